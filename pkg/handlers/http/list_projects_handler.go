package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/alvilabs/portfolio-api/pkg/domain/project"
)

type listProjectsHandler struct {
	logger      *logrus.Logger
	projectRepo project.Repository
}

func NewListProjectsHandler(logger *logrus.Logger, projectRepo project.Repository) Handler {
	return &listProjectsHandler{
		logger:      logger,
		projectRepo: projectRepo,
	}
}

func (h *listProjectsHandler) Handle(c *fiber.Ctx) error {
	projects, err := h.projectRepo.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to fetch projects")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch projects"})
	}

	if projects == nil {
		projects = []project.Project{}
	}

	return c.Status(fiber.StatusOK).JSON(projects)
}
