package observability

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/recruit-ops/pkg/util"
)

// RequestIDLocalKey is the fiber locals key holding the request id.
const RequestIDLocalKey = "request_id"

const unmatchedRoute = "unmatched"

// RouteLabel returns the matched route pattern for metric labels. Requests
// that only passed through global middleware share one "unmatched" label.
func RouteLabel(c *fiber.Ctx) string {
	if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
		return r.Path
	}
	return unmatchedRoute
}

// RequestLogger logs one line per request and feeds the request metrics.
// Requests to /metrics are neither logged nor counted.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}
		start := time.Now()

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()
		if err != nil {
			status = apperrors.ToDomainError(err).HTTPStatus
		}
		path := RouteLabel(c)
		rid, _ := c.Locals(RequestIDLocalKey).(string)

		metrics.RecordRequest(path, c.Method(), status, latency)

		fields := []zap.Field{
			zap.String("request_id", rid),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", latency),
		}
		if status >= fiber.StatusInternalServerError {
			logger.Warn("request completed", fields...)
		} else {
			logger.Info("request completed", fields...)
		}
		return err
	}
}
