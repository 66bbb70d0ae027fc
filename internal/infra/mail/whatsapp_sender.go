package mail

import (
	"log"
	"os"
	"strconv"

	"github.com/xavierca1/tavola-crm/internal/infra/integration/whatsapp"
	"github.com/xavierca1/tavola-crm/internal/infra/queue"
)

// WhatsAppSender pushes reservation confirmations over WhatsApp. It never
// propagates failures: the chat channel is a bonus, not part of the
// reservation's success.
type WhatsAppSender struct {
	client *whatsapp.Client
}

func NewWhatsAppSender(client *whatsapp.Client) *WhatsAppSender {
	return &WhatsAppSender{
		client: client,
	}
}

func (s *WhatsAppSender) SendConfirmation(payload queue.ConfirmationPayload) error {
	if payload.CustomerPhone == "" {
		return nil
	}
	if !s.client.IsConfigured() {
		return nil
	}

	templateName := os.Getenv("WHATSAPP_TEMPLATE_ID")
	if templateName == "" {
		templateName = "reservation_confirmation"
	}

	input := whatsapp.SendMessageInput{
		PhoneNumber:  payload.CustomerPhone,
		TemplateName: templateName,
		Parameters: []string{
			payload.CustomerName,
			payload.RestaurantName,
			payload.Date,
			payload.Time,
			strconv.Itoa(payload.Guests),
		},
	}

	if err := s.client.SendMessage(input); err != nil {
		log.Printf("⚠️ WhatsApp: failed to notify %s: %v", payload.CustomerPhone, err)
		return nil
	}

	return nil
}
