// Package outboxrepo implements the transactional outbox over GORM. Domain
// events are staged as rows in the same transaction as the aggregate change
// and published to the broker by the relay job after commit.
package outboxrepo

import (
	"context"
	"encoding/json"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"gorm.io/gorm"
)

// OutboxMessageDTO is the database row for one staged event.
type OutboxMessageDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	EventID     string `gorm:"type:uuid;uniqueIndex;not null"`
	AggregateID string `gorm:"type:uuid;index;not null"`
	EventType   string `gorm:"type:varchar(64);not null"`
	Payload     []byte `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time
	PublishedAt *time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "outbox_messages".
func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stages the given events within the current transaction.
func (r *GormOutboxRepository) Add(
	ctx context.Context, aggregateID string, events []order.DomainEvent,
) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OutboxMessageDTO, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		dtos = append(dtos, OutboxMessageDTO{
			EventID:     event.EventID,
			AggregateID: aggregateID,
			EventType:   event.Type,
			Payload:     payload,
			CreatedAt:   time.Now().UTC(),
		})
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetPending returns up to limit unpublished messages in insertion order.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxMessageDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, ports.OutboxMessage{
			ID:          dto.ID,
			EventID:     dto.EventID,
			AggregateID: dto.AggregateID,
			EventType:   dto.EventType,
			Payload:     dto.Payload,
		})
	}

	return messages, nil
}

// MarkPublished records that the message reached the broker.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id = ?", id).
		Update("published_at", &now).Error
}
