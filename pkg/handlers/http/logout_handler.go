package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/alvilabs/portfolio-api/pkg/common"
	"github.com/alvilabs/portfolio-api/pkg/config"
)

type logoutHandler struct {
	logger    *logrus.Logger
	serverCfg *config.ServerConfig
}

func NewLogoutHandler(logger *logrus.Logger, serverCfg *config.ServerConfig) Handler {
	return &logoutHandler{
		logger:    logger,
		serverCfg: serverCfg,
	}
}

// Handle clears the session cookie. Issued tokens stay valid until
// natural expiry; there is no server-side revocation list.
func (h *logoutHandler) Handle(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     common.AdminTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.serverCfg.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
