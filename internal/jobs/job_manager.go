package jobs

import (
	"fmt"
	"log/slog"

	"ecommerce/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	returnReminderJob *ReturnReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher ports.NotificationDispatcher,
	reminderSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		returnReminderJob: NewReturnReminderJob(uowFactory, dispatcher, reminderSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.returnReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start return reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.returnReminderJob.Stop()
}
