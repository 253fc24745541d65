package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID    uint  `gorm:"index:idx_appointments_day;not null" json:"salon_id"`
	EmployeeID *uint `gorm:"index" json:"employee_id"`

	// Referência legada de serviço único; quando existem linhas em Services,
	// elas são a fonte de verdade.
	PrimaryServiceID *uint   `json:"primary_service_id"`
	PrimaryService   *Service `gorm:"foreignKey:PrimaryServiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"primary_service,omitempty"`

	Services []AppointmentService `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE;" json:"services"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	Date string `gorm:"size:10;index:idx_appointments_day;not null" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;not null" json:"time"`                              // HH:MM

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentService é a associação N:N entre agendamento e serviço.
// Position guarda a ordem da seleção; a posição 0 é o serviço principal.
type AppointmentService struct {
	AppointmentID uint    `gorm:"primaryKey" json:"appointment_id"`
	ServiceID     uint    `gorm:"primaryKey" json:"service_id"`
	Position      int     `gorm:"not null;default:0" json:"position"`
	Service       Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	CreatedAt time.Time `json:"created_at"`
}
