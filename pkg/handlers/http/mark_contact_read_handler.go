package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/alvilabs/portfolio-api/pkg/domain/contact"
	domain "github.com/alvilabs/portfolio-api/pkg/domain/errors"
)

type markContactReadHandler struct {
	logger      *logrus.Logger
	contactRepo contact.Repository
}

func NewMarkContactReadHandler(logger *logrus.Logger, contactRepo contact.Repository) Handler {
	return &markContactReadHandler{
		logger:      logger,
		contactRepo: contactRepo,
	}
}

func (h *markContactReadHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("contact_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid contact id"})
	}

	if err := h.contactRepo.MarkRead(c.Context(), id); err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Contact not found"})
		}
		h.logger.WithError(err).Error("failed to mark contact read")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update contact"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
