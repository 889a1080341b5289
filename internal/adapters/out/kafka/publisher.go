// Package kafka publishes order domain events to a Kafka topic. Messages are
// keyed by order identifier so events of one order land on one partition and
// stay ordered.
package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// EventPublisher implements ports.EventPublisher over a kafka-go writer.
type EventPublisher struct {
	writer *kafka.Writer
}

// NewEventPublisher creates a publisher for the given brokers and topic.
// The brokers string is a comma-separated list of addresses.
func NewEventPublisher(brokersCSV, topic string) *EventPublisher {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return &EventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Publish sends one domain event. The message key is the order identifier
// from the event payload; the event type travels as a header for consumers
// that route without unmarshalling.
func (p *EventPublisher) Publish(ctx context.Context, event order.DomainEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key, _ := event.Payload["order_id"].(string)

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "event_id", Value: []byte(event.EventID)},
		},
	})
}

// Close flushes and closes the underlying writer.
func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
