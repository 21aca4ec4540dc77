package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/alvilabs/portfolio-api/pkg/domain/project"
	"github.com/alvilabs/portfolio-api/pkg/handlers/http/request"
)

type createProjectHandler struct {
	logger      *logrus.Logger
	projectRepo project.Repository
}

func NewCreateProjectHandler(logger *logrus.Logger, projectRepo project.Repository) Handler {
	return &createProjectHandler{
		logger:      logger,
		projectRepo: projectRepo,
	}
}

func (h *createProjectHandler) Handle(c *fiber.Ctx) error {
	var req request.ProjectUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": request.ErrMissingFields.Error()})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	now := time.Now()
	entity := &project.Project{
		ID:          uuid.New(),
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Content:     req.Content,
		Tools:       req.Tools,
		Category:    req.Category,
		Image:       req.Image,
		Published:   req.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.projectRepo.Create(c.Context(), entity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slug already exists"})
		}
		h.logger.WithError(err).Error("failed to create project")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create project"})
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
