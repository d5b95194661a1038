package events

import (
	"encoding/json"
	"log"
	"time"
)

const OrderCreated = "order.created"

// Publisher delivers domain events. Payloads are encoded as JSON.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

type OrderCreatedEvent struct {
	OrderID    int       `json:"order_id"`
	User       string    `json:"user"`
	TotalPrice float64   `json:"total_price"`
	ItemsCount int       `json:"items_count"`
	Date       time.Time `json:"date"`
}

// LogPublisher writes events to the standard logger. It is used when no
// broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	log.Printf("event %s: %s", routingKey, body)
	return nil
}
