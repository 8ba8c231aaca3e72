package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentPaid    = "paid"
	PaymentPending = "pending"
	PaymentFree    = "free"
)

var PaymentStatuses = []string{PaymentPaid, PaymentPending, PaymentFree}

// Registration is one sign-up for an event.
type Registration struct {
	ID            string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	EventID       string    `gorm:"type:varchar(64);index" json:"eventId"`
	EventTitle    string    `gorm:"type:varchar(255)" json:"eventTitle"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Email         string    `gorm:"type:varchar(255)" json:"email"`
	Phone         string    `gorm:"type:varchar(50)" json:"phone"`
	Participants  int       `gorm:"default:1" json:"participants"`
	PaymentStatus string    `gorm:"type:varchar(20);index" json:"paymentStatus"`
	Amount        float64   `json:"amount"`
	RegisteredAt  time.Time `json:"registeredAt"`
}

func (Registration) TableName() string {
	return "registrations"
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	ensureID(&r.ID)
	if r.RegisteredAt.IsZero() {
		r.RegisteredAt = time.Now()
	}
	return nil
}
