package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/creative-hut/backend/internal/models"
)

type EnrollmentHandler struct {
	DB *gorm.DB
}

func NewEnrollmentHandler(db *gorm.DB) *EnrollmentHandler {
	return &EnrollmentHandler{DB: db}
}

func (h *EnrollmentHandler) Routes(r fiber.Router) {
	r.Post("/enrollments", h.Create)
	r.Get("/enrollments/:userID", h.ListByUser)
}

// Create enrolls a user in a course. Uniqueness per (user, course) pair is
// enforced by the composite unique index, so the insert is atomic: under
// concurrent requests exactly one wins and the rest get a Conflict.
func (h *EnrollmentHandler) Create(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.FormValue("user_id"))
	if err != nil {
		return badRequest(c, "invalid user_id")
	}
	courseID, err := strconv.Atoi(c.FormValue("course_id"))
	if err != nil {
		return badRequest(c, "invalid course_id")
	}

	enrollment := models.Enrollment{
		UserID:   uint(userID),
		CourseID: uint(courseID),
	}
	if err := h.DB.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "already enrolled",
			})
		}
		return fail500(c, "failed to create enrollment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "enrollment successful",
		"data": fiber.Map{
			"enrollment_id": enrollment.ID,
			"user_id":       enrollment.UserID,
			"course_id":     enrollment.CourseID,
			"created_at":    enrollment.CreatedAt,
		},
	})
}

// ListByUser returns the user's enrollments; no course details are joined in.
func (h *EnrollmentHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userID")
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var enrollments []models.Enrollment
	if err := h.DB.Where("user_id = ?", userID).Find(&enrollments).Error; err != nil {
		return fail500(c, "failed to fetch enrollments")
	}
	return ok(c, enrollments)
}
