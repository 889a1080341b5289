package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// relayBatchSize bounds how many staged events one relay pass publishes.
const relayBatchSize = 100

// OutboxRelayJob drains the event outbox. Runs every second: reads pending
// messages in insertion order, publishes each to the broker and marks it
// published. A failed publish stops the pass; the message stays pending and
// is retried on the next one, so delivery is at-least-once.
type OutboxRelayJob struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates a relay for the given outbox and publisher.
func NewOutboxRelayJob(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		outbox:    outbox,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.relayPending(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay pass failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) relayPending(ctx context.Context) error {
	messages, err := j.outbox.GetPending(ctx, relayBatchSize)
	if err != nil {
		return err
	}

	for _, msg := range messages {
		var event order.DomainEvent
		if err = json.Unmarshal(msg.Payload, &event); err != nil {
			// A malformed payload would never publish; skip it but keep a trace.
			j.logger.ErrorContext(ctx, "Skipping malformed outbox message",
				"message_id", msg.ID, "event_id", msg.EventID, "error", err)
			if err = j.outbox.MarkPublished(ctx, msg.ID); err != nil {
				return err
			}
			continue
		}

		if err = j.publisher.Publish(ctx, event); err != nil {
			return err
		}

		if err = j.outbox.MarkPublished(ctx, msg.ID); err != nil {
			return err
		}

		j.logger.DebugContext(ctx, "Published domain event",
			"event_id", msg.EventID, "event_type", msg.EventType, "aggregate_id", msg.AggregateID)
	}

	return nil
}
