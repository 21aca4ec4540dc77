package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/alvilabs/portfolio-api/pkg/domain/blog"
	domain "github.com/alvilabs/portfolio-api/pkg/domain/errors"
)

type deleteBlogHandler struct {
	logger   *logrus.Logger
	blogRepo blog.Repository
}

func NewDeleteBlogHandler(logger *logrus.Logger, blogRepo blog.Repository) Handler {
	return &deleteBlogHandler{
		logger:   logger,
		blogRepo: blogRepo,
	}
}

func (h *deleteBlogHandler) Handle(c *fiber.Ctx) error {
	slug := c.Params("slug")

	if err := h.blogRepo.DeleteBySlug(c.Context(), slug); err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
		}
		h.logger.WithError(err).Error("failed to delete blog")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete blog"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
