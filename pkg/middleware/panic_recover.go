package middleware

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/alvilabs/portfolio-api/pkg/common"
)

type panicRecoverMiddleware struct {
	logger *logrus.Logger
}

// NewPanicRecoverMiddleware converts handler panics into a generic 500
// response instead of dropping the connection.
func NewPanicRecoverMiddleware(logger *logrus.Logger) Middleware {
	return &panicRecoverMiddleware{logger: logger}
}

func (m *panicRecoverMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				m.logger.WithFields(logrus.Fields{
					"panic":  r,
					"method": c.Method(),
					"path":   c.Path(),
					"client": common.ClientIP(c),
					"stack":  string(debug.Stack()),
				}).Error("recovered from handler panic")

				_ = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Internal server error",
				})
			}
		}()

		return c.Next()
	}
}
