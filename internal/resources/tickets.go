package resources

import (
	"context"
	"time"

	lr "github.com/zechsoft/new-trust-sub003/internal/listresource"
	"github.com/zechsoft/new-trust-sub003/internal/models"
)

// TicketDesk handles the conversation side of support tickets.
type TicketDesk struct {
	Tickets     *lr.Resource[models.Ticket]
	MaxMessages int
	Now         func() time.Time
}

// AppendMessage adds a message to a ticket's thread and saves the ticket.
func (d *TicketDesk) AppendMessage(ctx context.Context, ticketID, sender, body string) (models.TicketMessage, error) {
	if err := lr.OneOf("sender", sender, []string{models.SenderUser, models.SenderSupport}); err != nil {
		return models.TicketMessage{}, err
	}
	if err := lr.Required(lr.Field{Name: "body", Value: body}); err != nil {
		return models.TicketMessage{}, err
	}

	var msg models.TicketMessage
	_, err := d.Tickets.Mutate(ctx, ticketID, func(t *models.Ticket) error {
		msg = t.AppendMessage(sender, body, d.Now(), d.MaxMessages)
		return nil
	})
	if err != nil {
		return models.TicketMessage{}, err
	}
	return msg, nil
}
