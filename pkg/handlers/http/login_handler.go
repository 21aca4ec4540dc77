package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/alvilabs/portfolio-api/pkg/common"
	"github.com/alvilabs/portfolio-api/pkg/config"
	"github.com/alvilabs/portfolio-api/pkg/domain/admin"
	"github.com/alvilabs/portfolio-api/pkg/handlers/http/request"
	"github.com/alvilabs/portfolio-api/pkg/infra/jwt"
	"github.com/alvilabs/portfolio-api/pkg/infra/metrics"
	"github.com/alvilabs/portfolio-api/pkg/infra/password"
	"github.com/alvilabs/portfolio-api/pkg/infra/ratelimit"
)

const sessionMaxAge = 60 * 60 * 24 * 7 // 7 days, matches token TTL

type loginHandler struct {
	logger     *logrus.Logger
	adminRepo  admin.Repository
	jwtManager jwt.Manager
	serverCfg  *config.ServerConfig
	limiter    *ratelimit.Limiter
	limit      int
	window     time.Duration
}

func NewLoginHandler(
	logger *logrus.Logger,
	adminRepo admin.Repository,
	jwtManager jwt.Manager,
	serverCfg *config.ServerConfig,
	limiter *ratelimit.Limiter,
	limit int,
	window time.Duration,
) Handler {
	return &loginHandler{
		logger:     logger,
		adminRepo:  adminRepo,
		jwtManager: jwtManager,
		serverCfg:  serverCfg,
		limiter:    limiter,
		limit:      limit,
		window:     window,
	}
}

func (h *loginHandler) Handle(c *fiber.Ctx) error {
	var req request.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username and password are required"})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// The limiter runs after validation, so malformed requests are
	// rejected with a 400 without consuming a login attempt.
	key := common.LimitClassLogin + ":" + common.ClientIP(c)
	result := h.limiter.Check(key, h.limit, h.window)

	c.Set("X-RateLimit-Limit", strconv.Itoa(h.limit))
	c.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

	if !result.Allowed {
		retryAfter := int64(time.Until(result.ResetAt).Seconds()) + 1
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Set("Retry-After", strconv.FormatInt(retryAfter, 10))
		metrics.RateLimitRejections.WithLabelValues(common.LimitClassLogin).Inc()
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "Too many requests. Please try again later.",
		})
	}

	account, err := h.adminRepo.FindByUsername(c.Context(), req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown usernames burn the same bcrypt cost as a wrong
			// password, and return the identical error, so a caller
			// cannot enumerate accounts from content or timing.
			password.CompareDummy(req.Password)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		h.logger.WithError(err).Error("failed to look up admin account")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Login failed"})
	}

	if !password.Compare(account.PasswordHash, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := h.jwtManager.CreateToken(account.ID.String(), account.Username)
	if err != nil {
		h.logger.WithError(err).Error("failed to sign session token")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Login failed"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     common.AdminTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HTTPOnly: true,
		Secure:   h.serverCfg.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
