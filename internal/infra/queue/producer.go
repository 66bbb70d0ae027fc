package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ConfirmationPayload is the notification contract fired after a reservation
// is confirmed. Delivery is best-effort: a failed publish never rolls back
// the reservation.
type ConfirmationPayload struct {
	ReservationID string `json:"reservation_id"`
	RestaurantID  string `json:"restaurant_id"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email,omitempty"`

	RestaurantName  string `json:"restaurant_name"`
	RestaurantPhone string `json:"restaurant_phone"`

	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel

	// Tenant display info stamped onto every outgoing notification.
	RestaurantName  string
	RestaurantPhone string
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel, restaurantName, restaurantPhone string) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn:            conn,
		Ch:              ch,
		RestaurantName:  restaurantName,
		RestaurantPhone: restaurantPhone,
	}
}

func (p *RabbitMQProducer) PublishConfirmation(ctx context.Context, payload ConfirmationPayload) error {
	if payload.RestaurantName == "" {
		payload.RestaurantName = p.RestaurantName
	}
	if payload.RestaurantPhone == "" {
		payload.RestaurantPhone = p.RestaurantPhone
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish confirmation: %w", err)
	}

	return nil
}
