package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/alvilabs/portfolio-api/pkg/common"
	"github.com/alvilabs/portfolio-api/pkg/config"
	handlers "github.com/alvilabs/portfolio-api/pkg/handlers/http"
	"github.com/alvilabs/portfolio-api/pkg/infra/jwt"
	"github.com/alvilabs/portfolio-api/pkg/infra/ratelimit"
	"github.com/alvilabs/portfolio-api/pkg/middleware"
)

type okHandler struct{}

func (okHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func stubHandlerTransport() handlers.HandlerTransport {
	h := okHandler{}
	return handlers.HandlerTransport{
		LoginHandler:                 h,
		LogoutHandler:                h,
		ChatHandler:                  h,
		CreateContactHandler:         h,
		ListContactsHandler:          h,
		MarkContactReadHandler:       h,
		DeleteContactHandler:         h,
		ListBlogsHandler:             h,
		CreateBlogHandler:            h,
		UpdateBlogHandler:            h,
		DeleteBlogHandler:            h,
		ListPublishedBlogsHandler:    h,
		GetBlogHandler:               h,
		ListProjectsHandler:          h,
		CreateProjectHandler:         h,
		UpdateProjectHandler:         h,
		DeleteProjectHandler:         h,
		ListPublishedProjectsHandler: h,
		GetProjectHandler:            h,
	}
}

func newRoutedServer(t *testing.T) (*ApiServer, jwt.Manager) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	manager := jwt.NewJwtManager("test-secret", time.Hour, nil)
	limiter := ratelimit.NewLimiter(nil)

	mw := middleware.Transport{
		AdminAuthMiddleware:    middleware.NewAdminAuthMiddleware(logger, manager),
		ChatLimitMiddleware:    middleware.NewRateLimitMiddleware(logger, limiter, nil, common.LimitClassChat),
		ContactLimitMiddleware: middleware.NewRateLimitMiddleware(logger, limiter, nil, common.LimitClassContact),
		AdminLimitMiddleware:   middleware.NewRateLimitMiddleware(logger, limiter, nil, common.LimitClassAdmin),
		SecurityMiddleware:     middleware.NewSecurityMiddleware(),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(logger),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
	}

	srv := NewApiServer(ApiServerDI{
		MiddlewareTransport: mw,
		HandlerTransport:    stubHandlerTransport(),
		Config:              &config.Config{},
		Logger:              logger,
	})
	srv.setupRoutes()
	return srv, manager
}

func TestLogoutRequiresSession(t *testing.T) {
	srv, _ := newRoutedServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/logout", nil)
	resp, err := srv.Router.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutAllowedWithValidSession(t *testing.T) {
	srv, manager := newRoutedServer(t)

	token, err := manager.CreateToken("42", "admin")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: common.AdminTokenCookie, Value: token})
	resp, err := srv.Router.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLogoutCountsAgainstAdminBudget(t *testing.T) {
	srv, _ := newRoutedServer(t)

	// The admin class allows 100 requests per minute per IP; once the
	// budget is spent even unauthenticated requests are throttled.
	for i := 0; i < 100; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/logout", nil)
		resp, err := srv.Router.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/logout", nil)
	resp, err := srv.Router.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
}
