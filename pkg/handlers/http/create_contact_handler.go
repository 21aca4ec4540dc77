package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/alvilabs/portfolio-api/pkg/domain/contact"
	"github.com/alvilabs/portfolio-api/pkg/handlers/http/request"
)

type createContactHandler struct {
	logger      *logrus.Logger
	contactRepo contact.Repository
}

func NewCreateContactHandler(logger *logrus.Logger, contactRepo contact.Repository) Handler {
	return &createContactHandler{
		logger:      logger,
		contactRepo: contactRepo,
	}
}

func (h *createContactHandler) Handle(c *fiber.Ctx) error {
	var req request.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entity := &contact.Contact{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := h.contactRepo.Create(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to store contact submission")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit contact form"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Contact form submitted successfully",
	})
}
