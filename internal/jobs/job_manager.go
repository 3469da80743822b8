package jobs

import (
	"fmt"
	"io"
	"log/slog"
)

// Job is a scheduled background task owned by JobManager.
type Job interface {
	Name() string
	Start() error
	// Stop blocks until a run in progress has finished.
	Stop()
}

// JobManager starts jobs in registration order and stops them in reverse.
// Resources the jobs depend on are closed once every job has stopped.
type JobManager struct {
	jobs    []Job
	started []Job
	closers []io.Closer
	logger  *slog.Logger
}

func NewJobManager(logger *slog.Logger, jobs ...Job) *JobManager {
	return &JobManager{
		jobs:   jobs,
		logger: logger.With("component", "job_manager"),
	}
}

// CloseOnStop registers resources to close after the last job stopped.
func (jm *JobManager) CloseOnStop(closers ...io.Closer) {
	jm.closers = append(jm.closers, closers...)
}

// StartAll starts every job. If one fails, the jobs already started are
// stopped again before the error is returned.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if err := job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s: %w", job.Name(), err)
		}
		jm.started = append(jm.started, job)
	}

	jm.logger.Info("Jobs started", "count", len(jm.started))
	return nil
}

// StopAll stops the started jobs, newest first, and waits for each of them.
// Registered closers run afterwards, so no job uses a closed resource.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil

	for _, c := range jm.closers {
		if err := c.Close(); err != nil {
			jm.logger.Error("Failed to close resource", "error", err)
		}
	}
	jm.closers = nil
}
