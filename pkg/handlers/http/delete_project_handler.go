package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	domain "github.com/alvilabs/portfolio-api/pkg/domain/errors"
	"github.com/alvilabs/portfolio-api/pkg/domain/project"
)

type deleteProjectHandler struct {
	logger      *logrus.Logger
	projectRepo project.Repository
}

func NewDeleteProjectHandler(logger *logrus.Logger, projectRepo project.Repository) Handler {
	return &deleteProjectHandler{
		logger:      logger,
		projectRepo: projectRepo,
	}
}

func (h *deleteProjectHandler) Handle(c *fiber.Ctx) error {
	slug := c.Params("slug")

	if err := h.projectRepo.DeleteBySlug(c.Context(), slug); err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		}
		h.logger.WithError(err).Error("failed to delete project")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete project"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
