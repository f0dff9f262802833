package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/recruit-ops/internal/service"
)

// StartNotificationWorker registers notification handlers and delivers
// queued webhooks until ctx is cancelled.
func StartNotificationWorker(ctx context.Context, notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	notificationService.RegisterHandlers()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-notificationService.Pending():
				if err := notificationService.Deliver(ctx, ev); err != nil {
					logger.Warn("webhook delivery failed",
						zap.String("event_type", string(ev.Type)),
						zap.String("event_id", ev.ID),
						zap.Error(err))
				}
			}
		}
	}()
}
