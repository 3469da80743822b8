// Package jobs provides scheduled background tasks for the shipping service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish committed domain events
// (shipment state changes, order transitions) from the outbox table to Kafka
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(logger,
//		jobs.NewOutboxRelayJob(relayHandler, 100, logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay uses the cron expression "* * * * * *" (every second). A run that
// is still publishing when the next tick fires causes that tick to be skipped.
//
// # Error Handling
//
// - Publish failures are logged; unpublished messages are retried on the next tick
// - A message may be delivered more than once, consumers deduplicate by event_id
// - A batch size below one fails Start
// - When one job fails to start, JobManager stops the jobs it already started
package jobs
