package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TicketStatusOpen     = "open"
	TicketStatusPending  = "pending"
	TicketStatusResolved = "resolved"
	TicketStatusUrgent   = "urgent"
)

var TicketStatuses = []string{TicketStatusOpen, TicketStatusPending, TicketStatusResolved, TicketStatusUrgent}

const (
	SenderUser    = "user"
	SenderSupport = "support"
)

type TicketMessage struct {
	ID     string    `json:"id"`
	Sender string    `json:"sender"`
	Body   string    `json:"body"`
	SentAt time.Time `json:"sentAt"`
}

// Ticket is a support conversation. Messages are kept in send order.
type Ticket struct {
	ID             string                             `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Subject        string                             `gorm:"type:varchar(255);not null" json:"subject"`
	RequesterName  string                             `gorm:"type:varchar(255)" json:"requesterName"`
	RequesterEmail string                             `gorm:"type:varchar(255)" json:"requesterEmail"`
	Category       string                             `gorm:"type:varchar(100)" json:"category"`
	Priority       string                             `gorm:"type:varchar(20)" json:"priority"`
	Status         string                             `gorm:"type:varchar(20);default:'open';index" json:"status"`
	Messages       datatypes.JSONSlice[TicketMessage] `json:"messages"`
	CreatedAt      time.Time                          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time                          `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Ticket) TableName() string {
	return "tickets"
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	ensureID(&t.ID)
	if t.Status == "" {
		t.Status = TicketStatusOpen
	}
	return nil
}

func (t Ticket) Clone() Ticket {
	if t.Messages != nil {
		msgs := make([]TicketMessage, len(t.Messages))
		copy(msgs, t.Messages)
		t.Messages = msgs
	}
	return t
}

// AppendMessage adds a message and drops the oldest ones beyond max.
// A max of zero or less keeps everything.
func (t *Ticket) AppendMessage(sender, body string, at time.Time, max int) TicketMessage {
	msg := TicketMessage{ID: newID(), Sender: sender, Body: body, SentAt: at}
	t.Messages = append(t.Messages, msg)
	if max > 0 && len(t.Messages) > max {
		t.Messages = append([]TicketMessage(nil), t.Messages[len(t.Messages)-max:]...)
	}
	t.UpdatedAt = at
	return msg
}
