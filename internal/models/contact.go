package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

var ContactStatuses = []string{ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived}

var Priorities = []string{"low", "medium", "high"}

// ContactSubmission is a message sent through the public contact form.
type ContactSubmission struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	Subject   string    `gorm:"type:varchar(255)" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"type:varchar(20);default:'new';index" json:"status"`
	Priority  string    `gorm:"type:varchar(20);default:'medium'" json:"priority"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

func (c *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	if c.Status == "" {
		c.Status = ContactStatusNew
	}
	if c.Priority == "" {
		c.Priority = "medium"
	}
	return nil
}
