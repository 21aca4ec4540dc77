package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/alvilabs/portfolio-api/pkg/domain/blog"
)

type listPublishedBlogsHandler struct {
	logger   *logrus.Logger
	blogRepo blog.Repository
}

func NewListPublishedBlogsHandler(logger *logrus.Logger, blogRepo blog.Repository) Handler {
	return &listPublishedBlogsHandler{
		logger:   logger,
		blogRepo: blogRepo,
	}
}

func (h *listPublishedBlogsHandler) Handle(c *fiber.Ctx) error {
	blogs, err := h.blogRepo.ListPublished(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to fetch published blogs")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch blogs"})
	}

	summaries := make([]blog.Summary, 0, len(blogs))
	for i := range blogs {
		summaries = append(summaries, blogs[i].Summary())
	}

	return c.Status(fiber.StatusOK).JSON(summaries)
}
