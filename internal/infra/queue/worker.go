package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ConfirmationEmailSender delivers the confirmation email for a reservation.
type ConfirmationEmailSender interface {
	SendConfirmation(payload ConfirmationPayload) error
}

// ConfirmationMessenger delivers the confirmation over a chat channel
// (WhatsApp). Optional; nil disables it.
type ConfirmationMessenger interface {
	SendConfirmation(payload ConfirmationPayload) error
}

type Worker struct {
	Channel   *amqp.Channel
	Email     ConfirmationEmailSender
	Messenger ConfirmationMessenger
}

func NewWorker(ch *amqp.Channel, email ConfirmationEmailSender, messenger ConfirmationMessenger) *Worker {
	return &Worker{
		Channel:   ch,
		Email:     email,
		Messenger: messenger,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload ConfirmationPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] invalid JSON: %s", err)
				// Malformed message; reject without requeue so the queue keeps moving.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] sending confirmation for reservation %s", payload.ReservationID)

			if err := w.process(payload); err != nil {
				log.Printf("❌ [WORKER] confirmation delivery failed: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) process(payload ConfirmationPayload) error {
	// WhatsApp is fire-and-forget: the messenger logs its own failures.
	if w.Messenger != nil && payload.CustomerPhone != "" {
		w.Messenger.SendConfirmation(payload)
	}

	if payload.CustomerEmail == "" {
		// Nothing else to deliver; phone-only bookings are common.
		return nil
	}

	return w.Email.SendConfirmation(payload)
}
