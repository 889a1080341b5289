package order

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// Event type names as published to downstream consumers.
const (
	EventOrderCreated   = "order.created"
	EventOrderConfirmed = "order.confirmed"
	EventOrderCancelled = "order.cancelled"
	EventOrderShipped   = "order.shipped"
	EventOrderDelivered = "order.delivered"
)

// eventSchemaVersion is carried on every event so consumers can evolve
// payload shape. Bump on incompatible payload changes.
const eventSchemaVersion = 1

// DomainEvent is an immutable record of something that happened to an order.
// The aggregate constructs events after successful transitions; delivery is
// the responsibility of an external publisher invoked by the orchestration
// layer after the corresponding state change is durable.
type DomainEvent struct {
	EventID       string            `json:"event_id"`
	OccurredAt    time.Time         `json:"occurred_at"`
	Type          string            `json:"type"`
	SchemaVersion int               `json:"schema_version"`
	Payload       map[string]any    `json:"payload"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// WithMetadata returns a copy of the event carrying the given metadata entry,
// leaving the original untouched. Used by message-bus adapters for causation
// and correlation identifiers.
func (e DomainEvent) WithMetadata(key, value string) DomainEvent {
	metadata := make(map[string]string, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		metadata[k] = v
	}
	metadata[key] = value
	e.Metadata = metadata
	return e
}

// newDomainEvent snapshots the order into an event payload. Every event
// carries the order identity, customer, status and derived price; the
// creation event additionally carries the full line item list.
func newDomainEvent(eventType string, o *Order) DomainEvent {
	payload := map[string]any{
		"order_id":    o.id.String(),
		"customer_id": o.customerID.String(),
		"status":      o.status.String(),
		"price":       o.Price(),
	}

	if eventType == EventOrderCreated {
		items := make([]map[string]any, 0, len(o.items))
		for _, item := range o.items {
			items = append(items, map[string]any{
				"product_id": item.ProductID().String(),
				"quantity":   item.Quantity().Value(),
				"unit_price": item.UnitPrice(),
			})
		}
		payload["items"] = items
	}

	return DomainEvent{
		EventID:       kernel.NewUUID().String(),
		OccurredAt:    time.Now().UTC(),
		Type:          eventType,
		SchemaVersion: eventSchemaVersion,
		Payload:       payload,
	}
}
