package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"

	"github.com/alvilabs/portfolio-api/pkg/common"
	"github.com/alvilabs/portfolio-api/pkg/config"
	"github.com/alvilabs/portfolio-api/pkg/infra/metrics"
	"github.com/alvilabs/portfolio-api/pkg/infra/ratelimit"
)

// LimitConfig is the decoded per-class limit setting.
type LimitConfig struct {
	Limit  int    `mapstructure:"limit"`
	Window string `mapstructure:"window"`
}

var defaultLimits = map[string]LimitConfig{
	common.LimitClassLogin:   {Limit: 5, Window: "15m"},
	common.LimitClassChat:    {Limit: 20, Window: "1m"},
	common.LimitClassContact: {Limit: 5, Window: "1m"},
	common.LimitClassAdmin:   {Limit: 100, Window: "1m"},
}

// ResolveLimit returns the limit for class, letting configuration
// override the built-in defaults.
func ResolveLimit(cfg *config.RateLimitConfig, class string) (int, time.Duration, error) {
	limit := defaultLimits[class]

	if cfg != nil {
		if raw, ok := cfg.Limits[class]; ok {
			var decoded LimitConfig
			if err := mapstructure.Decode(raw, &decoded); err != nil {
				return 0, 0, fmt.Errorf("invalid rate limit config for %s: %w", class, err)
			}
			if decoded.Limit > 0 {
				limit.Limit = decoded.Limit
			}
			if decoded.Window != "" {
				limit.Window = decoded.Window
			}
		}
	}

	if limit.Limit <= 0 || limit.Window == "" {
		return 0, 0, fmt.Errorf("no rate limit configured for class %s", class)
	}

	window, err := time.ParseDuration(limit.Window)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid window for %s: %w", class, err)
	}

	return limit.Limit, window, nil
}

type rateLimitMiddleware struct {
	logger  *logrus.Logger
	limiter *ratelimit.Limiter
	class   string
	limit   int
	window  time.Duration
}

func NewRateLimitMiddleware(
	logger *logrus.Logger,
	limiter *ratelimit.Limiter,
	cfg *config.RateLimitConfig,
	class string,
) Middleware {
	limit, window, err := ResolveLimit(cfg, class)
	if err != nil {
		logger.WithError(err).WithField("class", class).Warn("falling back to default rate limit")
		limit, window = 10, time.Minute
	}

	return &rateLimitMiddleware{
		logger:  logger,
		limiter: limiter,
		class:   class,
		limit:   limit,
		window:  window,
	}
}

func (m *rateLimitMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := m.class + ":" + common.ClientIP(c)

		result := m.limiter.Check(key, m.limit, m.window)

		c.Set("X-RateLimit-Limit", strconv.Itoa(m.limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := int64(time.Until(result.ResetAt).Seconds()) + 1
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Set("Retry-After", strconv.FormatInt(retryAfter, 10))
			metrics.RateLimitRejections.WithLabelValues(m.class).Inc()
			m.logger.WithFields(logrus.Fields{
				"class": m.class,
				"key":   key,
			}).Debug("rate limit exceeded")
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		}

		return c.Next()
	}
}
