package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/alvilabs/portfolio-api/pkg/common"
	"github.com/alvilabs/portfolio-api/pkg/config"
	"github.com/alvilabs/portfolio-api/pkg/domain/admin"
	handlers "github.com/alvilabs/portfolio-api/pkg/handlers/http"
	"github.com/alvilabs/portfolio-api/pkg/infra/jwt"
	"github.com/alvilabs/portfolio-api/pkg/infra/password"
	"github.com/alvilabs/portfolio-api/pkg/infra/ratelimit"
)

type fakeAdminRepo struct {
	accounts map[string]*admin.Admin
	err      error
}

func (r *fakeAdminRepo) FindByUsername(_ context.Context, username string) (*admin.Admin, error) {
	if r.err != nil {
		return nil, r.err
	}
	account, ok := r.accounts[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return account, nil
}

func (r *fakeAdminRepo) Create(_ context.Context, account *admin.Admin) error {
	r.accounts[account.Username] = account
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func seededAdminRepo(t *testing.T, username, plain string) *fakeAdminRepo {
	t.Helper()
	hashed, err := password.Hash(plain)
	assert.NoError(t, err)
	return &fakeAdminRepo{accounts: map[string]*admin.Admin{
		username: {
			ID:           uuid.New(),
			Username:     username,
			PasswordHash: hashed,
			CreatedAt:    time.Now(),
		},
	}}
}

func newLoginApp(repo admin.Repository) *fiber.App {
	return newLoginAppWithEnv(repo, "development")
}

func newLoginAppWithEnv(repo admin.Repository, environment string) *fiber.App {
	manager := jwt.NewJwtManager("test-secret", time.Hour, nil)
	limiter := ratelimit.NewLimiter(nil)
	handler := handlers.NewLoginHandler(
		testLogger(), repo, manager,
		&config.ServerConfig{Environment: environment},
		limiter, 5, 15*time.Minute,
	)

	app := fiber.New()
	app.Post("/api/v1/admin/login", handler.Handle)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body map[string]interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func TestLoginHandler_Success(t *testing.T) {
	repo := seededAdminRepo(t, "admin", "correct-password")
	app := newLoginApp(repo)

	resp := postLogin(t, app, map[string]interface{}{"username": "admin", "password": "correct-password"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])

	var sessionCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == common.AdminTokenCookie {
			sessionCookie = cookie
		}
	}
	assert.NotNil(t, sessionCookie)
	assert.NotEmpty(t, sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
	assert.False(t, sessionCookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, sessionCookie.SameSite)
	assert.Equal(t, 604800, sessionCookie.MaxAge)

	manager := jwt.NewJwtManager("test-secret", time.Hour, nil)
	claims, err := manager.DecodeToken(sessionCookie.Value)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestLoginHandler_SecureCookieInProduction(t *testing.T) {
	repo := seededAdminRepo(t, "admin", "correct-password")
	app := newLoginAppWithEnv(repo, "production")

	resp := postLogin(t, app, map[string]interface{}{"username": "admin", "password": "correct-password"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == common.AdminTokenCookie {
			assert.True(t, cookie.Secure)
		}
	}
}

func TestLoginHandler_UnknownUserAndWrongPasswordAreIndistinguishable(t *testing.T) {
	repo := seededAdminRepo(t, "admin", "correct-password")
	app := newLoginApp(repo)

	unknown := postLogin(t, app, map[string]interface{}{"username": "nobody", "password": "whatever"})
	wrongPass := postLogin(t, app, map[string]interface{}{"username": "admin", "password": "wrong"})

	assert.Equal(t, fiber.StatusUnauthorized, unknown.StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, wrongPass.StatusCode)

	unknownBody, err := io.ReadAll(unknown.Body)
	assert.NoError(t, err)
	wrongPassBody, err := io.ReadAll(wrongPass.Body)
	assert.NoError(t, err)
	assert.Equal(t, string(unknownBody), string(wrongPassBody))
	assert.Contains(t, string(unknownBody), "Invalid credentials")

	assert.Empty(t, unknown.Cookies())
	assert.Empty(t, wrongPass.Cookies())
}

func TestLoginHandler_MissingFields(t *testing.T) {
	repo := seededAdminRepo(t, "admin", "correct-password")
	app := newLoginApp(repo)

	resp := postLogin(t, app, map[string]interface{}{"username": "admin"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Username and password are required", body["error"])
}

func TestLoginHandler_InputTooLong(t *testing.T) {
	repo := seededAdminRepo(t, "admin", "correct-password")
	app := newLoginApp(repo)

	resp := postLogin(t, app, map[string]interface{}{
		"username": strings.Repeat("a", 51),
		"password": "password",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid input length", body["error"])
}

func TestLoginHandler_RepoFailure(t *testing.T) {
	repo := &fakeAdminRepo{err: gorm.ErrInvalidDB}
	app := newLoginApp(repo)

	resp := postLogin(t, app, map[string]interface{}{"username": "admin", "password": "password"})
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Login failed", body["error"])
}

func TestLoginHandler_RateLimitedAfterFiveAttempts(t *testing.T) {
	repo := seededAdminRepo(t, "admin", "correct-password")
	app := newLoginApp(repo)

	for i := 0; i < 5; i++ {
		resp := postLogin(t, app, map[string]interface{}{"username": "admin", "password": "wrong"})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}

	resp := postLogin(t, app, map[string]interface{}{"username": "admin", "password": "correct-password"})
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
}

func TestLoginHandler_MalformedRequestsDoNotConsumeAttempts(t *testing.T) {
	repo := seededAdminRepo(t, "admin", "correct-password")
	app := newLoginApp(repo)

	// Invalid input is rejected before the limiter runs, so it never
	// eats into the attempt budget.
	for i := 0; i < 10; i++ {
		resp := postLogin(t, app, map[string]interface{}{"username": "admin"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}

	for i := 0; i < 5; i++ {
		resp := postLogin(t, app, map[string]interface{}{"username": "admin", "password": "wrong"})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}

	// Budget exhausted: well-formed attempts are throttled, but a
	// malformed request still gets the validation error back.
	resp := postLogin(t, app, map[string]interface{}{"username": "admin", "password": "wrong"})
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	resp = postLogin(t, app, map[string]interface{}{"username": "admin"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
