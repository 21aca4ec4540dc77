package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/alvilabs/portfolio-api/pkg/config"
	"github.com/alvilabs/portfolio-api/pkg/domain/admin"
	"github.com/alvilabs/portfolio-api/pkg/infra/database"
	infraLogger "github.com/alvilabs/portfolio-api/pkg/infra/logger"
	"github.com/alvilabs/portfolio-api/pkg/infra/password"
	"github.com/alvilabs/portfolio-api/pkg/infra/repository"
)

func main() {
	username := flag.String("username", "", "admin username")
	pass := flag.String("password", "", "admin password")
	flag.Parse()

	if *username == "" || *pass == "" {
		flag.Usage()
		os.Exit(2)
	}
	if len(*username) > 50 || len(*pass) > 200 {
		log.Fatal("username or password too long")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.WithError(err).Warn("could not load config file, using defaults and environment")
	}
	cfg := config.GetConfig()

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminRepository := repository.NewAdminRepository(db.DB)

	if _, err := adminRepository.FindByUsername(ctx, *username); err == nil {
		logger.Fatalf("admin %q already exists, refusing to overwrite", *username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Fatalf("failed to check existing admin: %v", err)
	}

	hashed, err := password.Hash(*pass)
	if err != nil {
		logger.Fatalf("failed to hash password: %v", err)
	}

	entity := &admin.Admin{
		ID:           uuid.New(),
		Username:     *username,
		PasswordHash: hashed,
		CreatedAt:    time.Now(),
	}
	if err := adminRepository.Create(ctx, entity); err != nil {
		logger.Fatalf("failed to create admin: %v", err)
	}

	logger.WithField("username", *username).Info("admin account created")
}
