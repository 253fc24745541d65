package models

import "time"

type WorkingHours struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"uniqueIndex:ux_working_hours_day;not null" json:"salon_id"`

	// 0 = domingo ... 6 = sábado (time.Weekday)
	DayOfWeek int `gorm:"uniqueIndex:ux_working_hours_day" json:"day_of_week"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
