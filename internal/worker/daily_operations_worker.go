package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/recruit-ops/internal/domain"
)

// DailyOperationsRunner is the part of the HR service the scheduler drives.
type DailyOperationsRunner interface {
	RunDailyOperations(ctx context.Context) (*domain.DailyReport, error)
}

// StartDailyOperationsWorker runs the daily HR pass every interval until ctx
// is cancelled. The returned channel is closed once the loop exits.
func StartDailyOperationsWorker(ctx context.Context, runner DailyOperationsRunner, interval time.Duration, logger *zap.Logger) <-chan struct{} {
	done := make(chan struct{})
	if runner == nil || interval <= 0 {
		close(done)
		return done
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runDailyOperations(ctx, runner, logger)
			}
		}
	}()
	return done
}

func runDailyOperations(ctx context.Context, runner DailyOperationsRunner, logger *zap.Logger) {
	report, err := runner.RunDailyOperations(ctx)
	if err != nil {
		logger.Error("daily operations failed", zap.Error(err))
		return
	}
	logger.Info("daily operations completed",
		zap.String("date", report.Date),
		zap.Int("new_applications", report.NewApplications),
		zap.Int("stale_applications", len(report.StaleApplications)))
}
