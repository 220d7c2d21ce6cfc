package jobs

import (
	"context"
	"log/slog"
	"time"

	"mailroom/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotifyPendingHandler appends reminders to packages that waited too long.
type NotifyPendingHandler interface {
	Handle(ctx context.Context, cmd commands.NotifyPendingPackagesCommand) (int, error)
}

// scheduleParser accepts five-field specs, an optional leading seconds field and
// descriptors such as @daily.
var scheduleParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// PendingReminderJob records a "notified" entry on every package still pending after
// the configured delay.
type PendingReminderJob struct {
	handler  NotifyPendingHandler
	schedule string
	after    time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingReminderJob creates the job. It runs on schedule once started.
func NewPendingReminderJob(
	handler NotifyPendingHandler,
	schedule string,
	after time.Duration,
	logger *slog.Logger,
) *PendingReminderJob {
	return &PendingReminderJob{
		handler:  handler,
		schedule: schedule,
		after:    after,
		now:      time.Now,
		cron:     cron.New(cron.WithParser(scheduleParser)),
		logger:   logger.With("component", "pending_reminder_job"),
	}
}

// RunOnce performs a single reminder pass and returns the number of packages reminded.
func (j *PendingReminderJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewNotifyPendingPackagesCommand(j.after, j.now().UTC())
	if err != nil {
		return 0, err
	}
	return j.handler.Handle(ctx, cmd)
}

// Start schedules the job. An invalid schedule is reported without starting anything.
func (j *PendingReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		notified, err := j.RunOnce(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending reminder job failed", "error", err)
			return
		}
		if notified > 0 {
			j.logger.InfoContext(ctx, "Pending packages reminded", "count", notified)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending reminder job started",
		"schedule", j.schedule, "after", j.after.String())
	return nil
}

// Stop stops the job, waiting for a running pass to finish.
func (j *PendingReminderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending reminder job stopped")
}
