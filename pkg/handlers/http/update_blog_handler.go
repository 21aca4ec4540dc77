package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/alvilabs/portfolio-api/pkg/domain/blog"
	domain "github.com/alvilabs/portfolio-api/pkg/domain/errors"
	"github.com/alvilabs/portfolio-api/pkg/handlers/http/request"
)

type updateBlogHandler struct {
	logger   *logrus.Logger
	blogRepo blog.Repository
}

func NewUpdateBlogHandler(logger *logrus.Logger, blogRepo blog.Repository) Handler {
	return &updateBlogHandler{
		logger:   logger,
		blogRepo: blogRepo,
	}
}

func (h *updateBlogHandler) Handle(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var req request.BlogUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": request.ErrMissingFields.Error()})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Slug != slug {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": request.ErrSlugImmutable.Error()})
	}

	entity, err := h.blogRepo.GetBySlug(c.Context(), slug)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
		}
		h.logger.WithError(err).Error("failed to fetch blog for update")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update blog"})
	}

	now := time.Now()
	entity.Title = req.Title
	entity.Excerpt = req.Excerpt
	entity.Content = req.Content
	entity.Category = req.Category
	entity.Image = req.Image
	entity.UpdatedAt = now
	if req.Published && entity.PublishedAt == nil {
		entity.PublishedAt = &now
	}
	entity.Published = req.Published

	if err := h.blogRepo.Update(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to update blog")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update blog"})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
