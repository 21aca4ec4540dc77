package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/alvilabs/portfolio-api/pkg/infra/metrics"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		// Route pattern rather than raw path keeps label cardinality bounded.
		path := c.Route().Path
		status := c.Response().StatusCode()
		metrics.RequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()

		return err
	}
}
