package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/alvilabs/portfolio-api/pkg/domain/blog"
)

type listBlogsHandler struct {
	logger   *logrus.Logger
	blogRepo blog.Repository
}

func NewListBlogsHandler(logger *logrus.Logger, blogRepo blog.Repository) Handler {
	return &listBlogsHandler{
		logger:   logger,
		blogRepo: blogRepo,
	}
}

func (h *listBlogsHandler) Handle(c *fiber.Ctx) error {
	blogs, err := h.blogRepo.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to fetch blogs")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch blogs"})
	}

	summaries := make([]blog.Summary, 0, len(blogs))
	for i := range blogs {
		summaries = append(summaries, blogs[i].Summary())
	}

	return c.Status(fiber.StatusOK).JSON(summaries)
}
