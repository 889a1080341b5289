// Package jobs provides scheduled background tasks for the ordering system.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(outboxRepo, publisher, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is OutboxRelayJob, which runs every second and drains
// staged domain events from the outbox to the message broker. The relay is
// the second half of the transactional outbox: state changes commit together
// with their events, the relay publishes after the fact, and a publish
// failure leaves the message pending for the next pass (at-least-once
// delivery).
package jobs
