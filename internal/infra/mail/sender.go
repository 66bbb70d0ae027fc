package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/tavola-crm/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendConfirmation(payload queue.ConfirmationPayload) error {
	data := ConfirmationEmailData{
		Name:           payload.CustomerName,
		RestaurantName: payload.RestaurantName,
		Date:           payload.Date,
		Time:           payload.Time,
		Guests:         payload.Guests,
		Phone:          payload.RestaurantPhone,
	}

	tmplPath := filepath.Join("templates", "confirmation.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("failed to read email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", payload.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your table at %s is confirmed, %s!", payload.RestaurantName, payload.CustomerName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}

	return nil
}
