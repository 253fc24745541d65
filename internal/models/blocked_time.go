package models

import "time"

type BlockedTime struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index:idx_blocked_times_day;not null" json:"salon_id"`

	Date      string `gorm:"size:10;index:idx_blocked_times_day" json:"date"` // YYYY-MM-DD
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Reason    string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
