package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction é uma entrada do livro financeiro. Entradas geradas por
// agendamentos são únicas por (AppointmentID, ServiceID).
type Transaction struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	SalonID    uint  `gorm:"index;not null" json:"salon_id"`
	EmployeeID *uint `json:"employee_id"`

	AppointmentID *uint `gorm:"uniqueIndex:ux_transactions_appointment_service" json:"appointment_id"`
	ServiceID     *uint `gorm:"uniqueIndex:ux_transactions_appointment_service" json:"service_id"`

	Type        string          `gorm:"size:10;not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Category    string          `gorm:"size:50" json:"category"`
	Date        time.Time       `json:"date"`
	Description string          `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
