package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/recruit-ops/internal/config"
	"github.com/spec-kit/recruit-ops/internal/events"
	"github.com/spec-kit/recruit-ops/internal/observability"
)

const notificationQueueSize = 256

// NotificationService turns domain events into log lines, email stubs and
// webhook deliveries. Webhook calls are queued and sent by the notification
// worker so a slow receiver never holds up a request.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
	metrics    *observability.Metrics
	client     *resty.Client
	queue      chan events.Event
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig, metrics *observability.Metrics) *NotificationService {
	timeout := cfg.WebhookTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "recruit-ops-notifier")

	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
		metrics:    metrics,
		client:     client,
		queue:      make(chan events.Event, notificationQueueSize),
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	for _, eventType := range events.AllEventTypes() {
		n.dispatcher.Subscribe(eventType, n.handleEvent)
	}
}

// Pending exposes queued webhook deliveries to the worker.
func (n *NotificationService) Pending() <-chan events.Event {
	return n.queue
}

func (n *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	n.logger.Info("domain event",
		zap.String("event_type", string(event.Type)),
		zap.String("entity_id", event.EntityID),
		zap.Any("payload", event.Payload))

	switch event.Type {
	case events.EventApplicationReceived, events.EventJobApplicationSubmitted,
		events.EventOnboardingStarted, events.EventDailyReportGenerated, events.EventInventoryLowStock:
		n.sendEmailNotificationStub(ctx, event)
	}

	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		n.metrics.RecordEvent(string(event.Type), "skipped")
		return nil
	}
	select {
	case n.queue <- event:
		n.metrics.RecordEvent(string(event.Type), "queued")
	default:
		n.logger.Warn("notification queue full; dropping webhook",
			zap.String("event_type", string(event.Type)),
			zap.String("event_id", event.ID))
		n.metrics.RecordEvent(string(event.Type), "dropped")
	}
	return nil
}

// Deliver posts the event to the configured webhook.
func (n *NotificationService) Deliver(ctx context.Context, event events.Event) error {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return nil
	}
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("X-Event-Type", string(event.Type)).
		SetHeader("X-Event-ID", event.ID).
		SetBody(event).
		Post(n.cfg.WebhookURL)
	if err != nil {
		n.metrics.RecordEvent(string(event.Type), "failed")
		return fmt.Errorf("post webhook: %w", err)
	}
	if resp.IsError() {
		n.metrics.RecordEvent(string(event.Type), "failed")
		return fmt.Errorf("webhook responded %d", resp.StatusCode())
	}
	n.metrics.RecordEvent(string(event.Type), "delivered")
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}
