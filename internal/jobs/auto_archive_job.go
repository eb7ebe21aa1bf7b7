package jobs

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// AutoArchiveJobName is the scheduler name of the archive job
const AutoArchiveJobName = "auto_archive"

// Archiver archives completed service requests older than a retention period
type Archiver interface {
	AutoArchive(ctx context.Context, olderThan time.Duration) (int, error)
}

// AutoArchiveJob moves long-completed service requests to the archive
type AutoArchiveJob struct {
	archiver  Archiver
	retention time.Duration
	timeout   time.Duration
	logger    *zap.Logger
}

// NewAutoArchiveJob creates the job; requests completed more than retention ago are archived
func NewAutoArchiveJob(archiver Archiver, retention, timeout time.Duration, logger *zap.Logger) *AutoArchiveJob {
	return &AutoArchiveJob{archiver: archiver, retention: retention, timeout: timeout, logger: logger}
}

// Run performs one archive pass
func (j *AutoArchiveJob) Run() {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	start := time.Now()
	count, err := j.archiver.AutoArchive(ctx, j.retention)
	if err != nil {
		j.logger.Error("auto-archive failed",
			zap.Int("archived", count),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return
	}
	j.logger.Info("auto-archive finished",
		zap.Int("archived", count),
		zap.Duration("retention", j.retention),
		zap.Duration("duration", time.Since(start)))
}

// RegisterAutoArchiveJob adds the job to scheduler under cronExpr
func RegisterAutoArchiveJob(scheduler *Scheduler, archiver Archiver, cronExpr string, retentionDays int, timeout time.Duration, logger *zap.Logger) error {
	if retentionDays <= 0 {
		return fmt.Errorf("auto-archive retention must be positive, got %d days", retentionDays)
	}
	job := NewAutoArchiveJob(archiver, time.Duration(retentionDays)*24*time.Hour, timeout, logger)
	return scheduler.AddJob(AutoArchiveJobName, cronExpr, job.Run)
}
