package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/creative-hut/backend/internal/models"
)

type ContactHandler struct {
	DB *gorm.DB
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{DB: db}
}

func (h *ContactHandler) Routes(r fiber.Router) {
	r.Post("/contact", h.Create)
}

type ContactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Create records a contact-form submission. The email is stored as given;
// there is no format validation.
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req ContactReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	if strings.TrimSpace(req.Name) == "" || req.Email == "" || req.Message == "" {
		return badRequest(c, "name, email and message are required")
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := h.DB.Create(&contact).Error; err != nil {
		return fail500(c, "failed to save message")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "message received",
		"data":    fiber.Map{"id": contact.ID},
	})
}
