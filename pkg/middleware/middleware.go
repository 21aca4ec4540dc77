package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

type Transport struct {
	AdminAuthMiddleware    Middleware
	ChatLimitMiddleware    Middleware
	ContactLimitMiddleware Middleware
	AdminLimitMiddleware   Middleware
	SecurityMiddleware     Middleware
	MetricsMiddleware      Middleware
	PanicRecoverMiddleware Middleware
}
