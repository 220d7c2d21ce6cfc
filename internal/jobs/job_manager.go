package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

type job interface {
	Start() error
	Stop()
}

// ReminderConfig schedules the pending reminder job. An empty Schedule disables it.
type ReminderConfig struct {
	Schedule string
	After    time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []namedJob
	started []namedJob
}

type namedJob struct {
	name string
	job  job
}

// NewJobManager creates a job manager with the jobs enabled by configuration.
func NewJobManager(notifyHandler NotifyPendingHandler, reminders ReminderConfig, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if reminders.Schedule != "" {
		jm.jobs = append(jm.jobs, namedJob{
			name: "pending reminder",
			job:  NewPendingReminderJob(notifyHandler, reminders.Schedule, reminders.After, logger),
		})
	}
	return jm
}

// Len returns the number of configured jobs.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start; jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

// StopAll stops the started jobs gracefully, most recent first.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].job.Stop()
	}
	jm.started = nil
}
