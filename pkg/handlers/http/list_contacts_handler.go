package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/alvilabs/portfolio-api/pkg/domain/contact"
)

const contactListLimit = 100

type listContactsHandler struct {
	logger      *logrus.Logger
	contactRepo contact.Repository
}

func NewListContactsHandler(logger *logrus.Logger, contactRepo contact.Repository) Handler {
	return &listContactsHandler{
		logger:      logger,
		contactRepo: contactRepo,
	}
}

func (h *listContactsHandler) Handle(c *fiber.Ctx) error {
	contacts, err := h.contactRepo.List(c.Context(), contactListLimit)
	if err != nil {
		h.logger.WithError(err).Error("failed to fetch contacts")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch contacts"})
	}

	if contacts == nil {
		contacts = []contact.Contact{}
	}

	return c.Status(fiber.StatusOK).JSON(contacts)
}
