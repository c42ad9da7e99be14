package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/creative-hut/backend/internal/models"
	"github.com/creative-hut/backend/internal/storage"
)

type GigHandler struct {
	DB      *gorm.DB
	Uploads *storage.Uploads
}

func NewGigHandler(db *gorm.DB, uploads *storage.Uploads) *GigHandler {
	return &GigHandler{DB: db, Uploads: uploads}
}

func (h *GigHandler) Routes(r fiber.Router) {
	r.Post("/gigs", h.Create)
	r.Get("/gigs", h.List)
	r.Get("/gigs/freelancer/:id", h.ListByFreelancer)
	r.Get("/gigs/image/:filename", h.GetImage)
	r.Put("/gigs/:id", h.Update)
	r.Delete("/gigs/:id", h.Delete)
}

func (h *GigHandler) Create(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	description := c.FormValue("description")
	category := c.FormValue("category")
	if title == "" || description == "" {
		return badRequest(c, "title and description are required")
	}

	price, err := strconv.Atoi(c.FormValue("price"))
	if err != nil {
		return badRequest(c, "invalid price")
	}
	revisions, err := strconv.Atoi(c.FormValue("revisions"))
	if err != nil {
		return badRequest(c, "invalid revisions")
	}
	delivery, err := strconv.Atoi(c.FormValue("delivery"))
	if err != nil {
		return badRequest(c, "invalid delivery")
	}
	userID, err := strconv.Atoi(c.FormValue("user_id"))
	if err != nil {
		return badRequest(c, "invalid user_id")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "image file is required")
	}
	path, err := h.Uploads.Save(file)
	if err != nil {
		return fail500(c, "failed to save image")
	}

	gig := models.Gig{
		Title:       title,
		Description: description,
		Category:    category,
		Price:       price,
		Revisions:   revisions,
		Delivery:    delivery,
		ImagePath:   path,
		UserID:      uint(userID),
	}
	if err := h.DB.Create(&gig).Error; err != nil {
		return fail500(c, "failed to create gig")
	}
	return created(c, gig)
}

func (h *GigHandler) List(c *fiber.Ctx) error {
	var gigs []models.Gig
	if err := h.DB.Find(&gigs).Error; err != nil {
		return fail500(c, "failed to fetch gigs")
	}
	return ok(c, gigs)
}

func (h *GigHandler) ListByFreelancer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid freelancer id")
	}

	var gigs []models.Gig
	if err := h.DB.Where("user_id = ?", id).Find(&gigs).Error; err != nil {
		return fail500(c, "failed to fetch gigs")
	}
	return ok(c, gigs)
}

// GetImage serves a stored image by filename, independent of whether any gig
// row still references it.
func (h *GigHandler) GetImage(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if !h.Uploads.Exists(filename) {
		return notFound(c, "image not found")
	}
	return c.SendFile(h.Uploads.Path(filename))
}

// Update changes title, category and price only; description, revisions,
// delivery and image are fixed at creation.
func (h *GigHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid gig id")
	}

	title := strings.TrimSpace(c.FormValue("title"))
	category := c.FormValue("category")
	if title == "" || category == "" {
		return badRequest(c, "title and category are required")
	}
	price, err := strconv.Atoi(c.FormValue("price"))
	if err != nil {
		return badRequest(c, "invalid price")
	}

	var gig models.Gig
	if err := h.DB.First(&gig, "id = ?", id).Error; err != nil {
		return notFound(c, "gig not found")
	}

	gig.Title = title
	gig.Category = category
	gig.Price = price
	if err := h.DB.Save(&gig).Error; err != nil {
		return fail500(c, "failed to update gig")
	}
	return ok(c, gig)
}

// Delete removes the row only. The image file stays in the uploads directory
// and remains fetchable by filename.
func (h *GigHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid gig id")
	}

	var gig models.Gig
	if err := h.DB.First(&gig, "id = ?", id).Error; err != nil {
		return notFound(c, "gig not found")
	}

	if err := h.DB.Delete(&gig).Error; err != nil {
		return fail500(c, "failed to delete gig")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "gig deleted",
	})
}
