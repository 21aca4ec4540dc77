package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	domain "github.com/alvilabs/portfolio-api/pkg/domain/errors"
	"github.com/alvilabs/portfolio-api/pkg/domain/project"
	"github.com/alvilabs/portfolio-api/pkg/handlers/http/request"
)

type updateProjectHandler struct {
	logger      *logrus.Logger
	projectRepo project.Repository
}

func NewUpdateProjectHandler(logger *logrus.Logger, projectRepo project.Repository) Handler {
	return &updateProjectHandler{
		logger:      logger,
		projectRepo: projectRepo,
	}
}

func (h *updateProjectHandler) Handle(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var req request.ProjectUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": request.ErrMissingFields.Error()})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Slug != slug {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": request.ErrSlugImmutable.Error()})
	}

	entity, err := h.projectRepo.GetBySlug(c.Context(), slug)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		}
		h.logger.WithError(err).Error("failed to fetch project for update")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update project"})
	}

	entity.Title = req.Title
	entity.Description = req.Description
	entity.Content = req.Content
	entity.Tools = req.Tools
	entity.Category = req.Category
	entity.Image = req.Image
	entity.Published = req.Published
	entity.UpdatedAt = time.Now()

	if err := h.projectRepo.Update(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to update project")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update project"})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
