package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/creative-hut/backend/internal/models"
	"github.com/creative-hut/backend/internal/storage"
)

type UserHandler struct {
	DB      *gorm.DB
	Uploads *storage.Uploads
}

func NewUserHandler(db *gorm.DB, uploads *storage.Uploads) *UserHandler {
	return &UserHandler{DB: db, Uploads: uploads}
}

func (h *UserHandler) Routes(r fiber.Router) {
	r.Post("/users", h.Create)
	r.Post("/users/:id/upload-pic", h.UploadPic)
	r.Get("/users", h.List)
	r.Get("/users/by-email/:email", h.GetByEmail)
	r.Get("/users/:id", h.Get)
	r.Put("/users/:id", h.Update)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	email := strings.TrimSpace(c.FormValue("email"))
	role := c.FormValue("role")

	if name == "" || email == "" || role == "" {
		return badRequest(c, "name, email and role are required")
	}

	user := models.User{
		Name:  name,
		Email: email,
		Role:  models.Role(role),
	}
	// A duplicate email is caught by the unique index only; it surfaces as a
	// store error here, not as a validation response.
	if err := h.DB.Create(&user).Error; err != nil {
		return fail500(c, "failed to create user")
	}
	return created(c, user)
}

func (h *UserHandler) UploadPic(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "image file is required")
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		return notFound(c, "user not found")
	}

	path, err := h.Uploads.Save(file)
	if err != nil {
		return fail500(c, "failed to save image")
	}

	user.ProfilePic = path
	if err := h.DB.Save(&user).Error; err != nil {
		return fail500(c, "failed to update user")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "profile picture updated",
		"data":    fiber.Map{"profile_pic": user.ProfilePic},
	})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	var users []models.User
	if err := h.DB.Find(&users).Error; err != nil {
		return fail500(c, "failed to fetch users")
	}
	return ok(c, users)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		return notFound(c, "user not found")
	}
	return ok(c, user)
}

func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	var user models.User
	if err := h.DB.First(&user, "email = ?", email).Error; err != nil {
		return notFound(c, "user not found")
	}
	return ok(c, user)
}

// Update overwrites name, bio and skills in full; all three are required.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	name := strings.TrimSpace(c.FormValue("name"))
	bio := c.FormValue("bio")
	skills := c.FormValue("skills")
	if name == "" || bio == "" || skills == "" {
		return badRequest(c, "name, bio and skills are required")
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		return notFound(c, "user not found")
	}

	user.Name = name
	user.Bio = bio
	user.Skills = skills
	if err := h.DB.Save(&user).Error; err != nil {
		return fail500(c, "failed to update user")
	}
	return ok(c, user)
}
