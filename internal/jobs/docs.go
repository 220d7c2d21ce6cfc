// Package jobs provides scheduled background tasks for the mailroom.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// PendingReminderJob appends one "notified" entry to every package that is still
// pending longer than REMINDER_AFTER. It runs on REMINDER_CRON and is disabled when the
// schedule is empty. A package is reminded at most once.
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(notifyHandler, jobs.ReminderConfig{
//		Schedule: "0 8 * * *",
//		After:    72 * time.Hour,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and retried at the next tick. A failed start stops the jobs
// that were already running.
package jobs
