package jobs

import (
	"context"
	"log/slog"
	"time"

	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// reminderAge is how long a return may sit without movement before the
// back office is nudged about it.
const reminderAge = 72 * time.Hour

// ReturnReminderJob periodically scans active returns and emits an admin
// reminder for every return that has been idle past the reminder age.
// Reminders are plain notifications; the job never mutates orders.
type ReturnReminderJob struct {
	uowFactory ports.UnitOfWorkFactory
	dispatcher ports.NotificationDispatcher
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewReturnReminderJob creates a job scanning for stale returns on the
// given cron schedule.
func NewReturnReminderJob(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher ports.NotificationDispatcher,
	schedule string,
	logger *slog.Logger,
) *ReturnReminderJob {
	return &ReturnReminderJob{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		schedule:   schedule,
		cron:       cron.New(),
		logger:     logger.With("component", "return_reminder_job"),
	}
}

// Start begins the reminder job on its schedule.
func (j *ReturnReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Return reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Return reminder job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reminder job.
func (j *ReturnReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Return reminder job stopped")
}

func (j *ReturnReminderJob) run(ctx context.Context) error {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	returned, err := uow.OrderRepository().GetAllInStatus(ctx, order.Returned)
	if err != nil {
		return err
	}

	cutoff := time.Now().UTC().Add(-reminderAge)
	reminders := make([]order.Notification, 0)
	for _, aggregate := range returned {
		if aggregate.ReturnStatus().IsTerminal() {
			continue
		}
		requestedAt := aggregate.ReturnRequestedAt()
		if requestedAt == nil || requestedAt.After(cutoff) {
			continue
		}
		reminders = append(reminders, order.Notification{
			Kind:    order.AdminReturnReminder,
			OrderID: aggregate.ID(),
		})
	}

	if len(reminders) > 0 {
		j.dispatcher.Dispatch(ctx, reminders)
		j.logger.InfoContext(ctx, "Stale return reminders dispatched", "count", len(reminders))
	}

	return nil
}
