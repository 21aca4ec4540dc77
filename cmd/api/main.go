package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/alvilabs/portfolio-api/pkg/common"
	"github.com/alvilabs/portfolio-api/pkg/config"
	handlers "github.com/alvilabs/portfolio-api/pkg/handlers/http"
	"github.com/alvilabs/portfolio-api/pkg/infra/database"
	"github.com/alvilabs/portfolio-api/pkg/infra/httpx"
	"github.com/alvilabs/portfolio-api/pkg/infra/jwt"
	infraLogger "github.com/alvilabs/portfolio-api/pkg/infra/logger"
	"github.com/alvilabs/portfolio-api/pkg/infra/providers"
	"github.com/alvilabs/portfolio-api/pkg/infra/providers/factory"
	"github.com/alvilabs/portfolio-api/pkg/infra/ratelimit"
	"github.com/alvilabs/portfolio-api/pkg/infra/repository"
	"github.com/alvilabs/portfolio-api/pkg/middleware"
	"github.com/alvilabs/portfolio-api/pkg/server"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.WithError(err).Warn("could not load config file, using defaults and environment")
	}
	cfg := config.GetConfig()

	// The API degrades gracefully without a database: content and admin
	// endpoints report storage unavailable while contact-free routes such
	// as chat keep working.
	var gormDB *gorm.DB
	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.WithError(err).Warn("database unavailable, storage-backed endpoints will fail")
	} else {
		gormDB = db.DB
		defer db.Close()
	}

	adminRepository := repository.NewAdminRepository(gormDB)
	blogRepository := repository.NewBlogRepository(gormDB)
	projectRepository := repository.NewProjectRepository(gormDB)
	contactRepository := repository.NewContactRepository(gormDB)

	secretKey := cfg.Auth.SecretKey
	if secretKey == "" {
		logger.Warn("auth secret key not configured, using insecure development key")
		secretKey = "development-secret-change-me"
	}
	jwtManager := jwt.NewJwtManager(secretKey, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour, nil)

	limiter := ratelimit.NewLimiter(nil)
	sweepInterval, err := time.ParseDuration(cfg.RateLimit.SweepInterval)
	if err != nil || sweepInterval <= 0 {
		sweepInterval = time.Minute
	}
	limiter.StartSweeper(sweepInterval)
	defer limiter.Stop()

	loginLimit, loginWindow, err := middleware.ResolveLimit(&cfg.RateLimit, common.LimitClassLogin)
	if err != nil {
		logger.WithError(err).Warn("falling back to default login rate limit")
		loginLimit, loginWindow = 5, 15*time.Minute
	}

	chatClient := resolveChatClient(logger, cfg)
	chatBreaker := httpx.NewCircuitBreaker("chat-provider", 30*time.Second, 5)

	middlewareTransport := middleware.Transport{
		AdminAuthMiddleware:    middleware.NewAdminAuthMiddleware(logger, jwtManager),
		ChatLimitMiddleware:    middleware.NewRateLimitMiddleware(logger, limiter, &cfg.RateLimit, common.LimitClassChat),
		ContactLimitMiddleware: middleware.NewRateLimitMiddleware(logger, limiter, &cfg.RateLimit, common.LimitClassContact),
		AdminLimitMiddleware:   middleware.NewRateLimitMiddleware(logger, limiter, &cfg.RateLimit, common.LimitClassAdmin),
		SecurityMiddleware:     middleware.NewSecurityMiddleware(),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(logger),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
	}

	handlerTransport := handlers.HandlerTransport{
		// Auth
		LoginHandler:  handlers.NewLoginHandler(logger, adminRepository, jwtManager, &cfg.Server, limiter, loginLimit, loginWindow),
		LogoutHandler: handlers.NewLogoutHandler(logger, &cfg.Server),
		// Chat
		ChatHandler: handlers.NewChatHandler(logger, chatClient, chatBreaker, &cfg.Chat),
		// Contact
		CreateContactHandler:   handlers.NewCreateContactHandler(logger, contactRepository),
		ListContactsHandler:    handlers.NewListContactsHandler(logger, contactRepository),
		MarkContactReadHandler: handlers.NewMarkContactReadHandler(logger, contactRepository),
		DeleteContactHandler:   handlers.NewDeleteContactHandler(logger, contactRepository),
		// Blog
		ListBlogsHandler:          handlers.NewListBlogsHandler(logger, blogRepository),
		CreateBlogHandler:         handlers.NewCreateBlogHandler(logger, blogRepository),
		UpdateBlogHandler:         handlers.NewUpdateBlogHandler(logger, blogRepository),
		DeleteBlogHandler:         handlers.NewDeleteBlogHandler(logger, blogRepository),
		ListPublishedBlogsHandler: handlers.NewListPublishedBlogsHandler(logger, blogRepository),
		GetBlogHandler:            handlers.NewGetBlogHandler(logger, blogRepository),
		// Project
		ListProjectsHandler:          handlers.NewListProjectsHandler(logger, projectRepository),
		CreateProjectHandler:         handlers.NewCreateProjectHandler(logger, projectRepository),
		UpdateProjectHandler:         handlers.NewUpdateProjectHandler(logger, projectRepository),
		DeleteProjectHandler:         handlers.NewDeleteProjectHandler(logger, projectRepository),
		ListPublishedProjectsHandler: handlers.NewListPublishedProjectsHandler(logger, projectRepository),
		GetProjectHandler:            handlers.NewGetProjectHandler(logger, projectRepository),
	}

	srv := server.NewApiServer(server.ApiServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}

func resolveChatClient(logger *logrus.Logger, cfg *config.Config) providers.Client {
	locator := factory.NewProviderLocator()
	client, err := locator.Get(cfg.Chat.Provider)
	if err != nil {
		logger.Warnf("unknown chat provider %q, falling back to openai", cfg.Chat.Provider)
		client, _ = locator.Get(factory.ProviderOpenAI)
	}
	return client
}
