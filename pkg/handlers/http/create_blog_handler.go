package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/alvilabs/portfolio-api/pkg/domain/blog"
	"github.com/alvilabs/portfolio-api/pkg/handlers/http/request"
)

type createBlogHandler struct {
	logger   *logrus.Logger
	blogRepo blog.Repository
}

func NewCreateBlogHandler(logger *logrus.Logger, blogRepo blog.Repository) Handler {
	return &createBlogHandler{
		logger:   logger,
		blogRepo: blogRepo,
	}
}

func (h *createBlogHandler) Handle(c *fiber.Ctx) error {
	var req request.BlogUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": request.ErrMissingFields.Error()})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	now := time.Now()
	entity := &blog.Blog{
		ID:        uuid.New(),
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Category:  req.Category,
		Image:     req.Image,
		Published: req.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Published {
		entity.PublishedAt = &now
	}

	if err := h.blogRepo.Create(c.Context(), entity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slug already exists"})
		}
		h.logger.WithError(err).Error("failed to create blog")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create blog"})
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
