package jobs

import (
	"context"
	"time"

	"quickgig-backend/internal/logger"
)

// CloseExpiredJobs closes OPEN jobs whose job date has passed. Feeds only
// show OPEN jobs, so stale postings disappear the night after their date.
func (jr *JobRunner) CloseExpiredJobs() {
	jr.runWithRecovery("CloseExpiredJobs", func() {
		ctx := context.Background()

		today := time.Now().UTC().Format("2006-01-02")
		count, err := jr.store.JobRepository.CloseExpired(ctx, today)
		if err != nil {
			logger.Error("Failed to close expired jobs", "error", err)
			return
		}

		logger.Info("Closed expired jobs", "count", count, "before", today)
	})
}

// PurgeReadNotifications deletes read notifications older than the configured
// retention window. Unread ones are kept regardless of age.
func (jr *JobRunner) PurgeReadNotifications() {
	jr.runWithRecovery("PurgeReadNotifications", func() {
		ctx := context.Background()

		retainDays := jr.config.Scheduler.NotificationRetainDays
		cutoff := time.Now().UTC().AddDate(0, 0, -retainDays)

		count, err := jr.store.NotificationRepository.PurgeRead(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge read notifications", "error", err)
			return
		}

		logger.Info("Purged read notifications", "count", count, "cutoff", cutoff.Format("2006-01-02"))
	})
}
