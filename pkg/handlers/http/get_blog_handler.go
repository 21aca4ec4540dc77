package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/alvilabs/portfolio-api/pkg/domain/blog"
	domain "github.com/alvilabs/portfolio-api/pkg/domain/errors"
)

type getBlogHandler struct {
	logger   *logrus.Logger
	blogRepo blog.Repository
}

func NewGetBlogHandler(logger *logrus.Logger, blogRepo blog.Repository) Handler {
	return &getBlogHandler{
		logger:   logger,
		blogRepo: blogRepo,
	}
}

func (h *getBlogHandler) Handle(c *fiber.Ctx) error {
	slug := c.Params("slug")

	entity, err := h.blogRepo.GetPublishedBySlug(c.Context(), slug)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
		}
		h.logger.WithError(err).Error("failed to fetch blog")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch blog"})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
