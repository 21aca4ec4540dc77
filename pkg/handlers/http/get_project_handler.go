package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	domain "github.com/alvilabs/portfolio-api/pkg/domain/errors"
	"github.com/alvilabs/portfolio-api/pkg/domain/project"
)

type getProjectHandler struct {
	logger      *logrus.Logger
	projectRepo project.Repository
}

func NewGetProjectHandler(logger *logrus.Logger, projectRepo project.Repository) Handler {
	return &getProjectHandler{
		logger:      logger,
		projectRepo: projectRepo,
	}
}

func (h *getProjectHandler) Handle(c *fiber.Ctx) error {
	slug := c.Params("slug")

	entity, err := h.projectRepo.GetPublishedBySlug(c.Context(), slug)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		}
		h.logger.WithError(err).Error("failed to fetch project")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch project"})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
