package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/creative-hut/backend/internal/models"
	"github.com/creative-hut/backend/internal/storage"
)

type CourseHandler struct {
	DB      *gorm.DB
	Uploads *storage.Uploads
}

func NewCourseHandler(db *gorm.DB, uploads *storage.Uploads) *CourseHandler {
	return &CourseHandler{DB: db, Uploads: uploads}
}

func (h *CourseHandler) Routes(r fiber.Router) {
	r.Post("/courses", h.Create)
	r.Get("/courses", h.List)
	r.Get("/courses/:id", h.Get)
}

func (h *CourseHandler) Create(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	instructor := c.FormValue("instructor")
	description := c.FormValue("description")
	category := c.FormValue("category")
	if title == "" || instructor == "" || description == "" || category == "" {
		return badRequest(c, "title, instructor, description and category are required")
	}

	price, err := strconv.Atoi(c.FormValue("price"))
	if err != nil {
		return badRequest(c, "invalid price")
	}

	// The image is optional; without one the thumbnail stays null.
	var thumbnail *string
	if file, err := c.FormFile("image"); err == nil {
		path, err := h.Uploads.Save(file)
		if err != nil {
			return fail500(c, "failed to save image")
		}
		thumbnail = &path
	}

	course := models.Course{
		Title:       title,
		Instructor:  instructor,
		Description: description,
		Category:    category,
		Price:       price,
		Thumbnail:   thumbnail,
	}
	if err := h.DB.Create(&course).Error; err != nil {
		return fail500(c, "failed to create course")
	}
	return created(c, course)
}

// List filters by exact category match and/or is_free (true selects price 0,
// false selects price > 0). Both are optional and combine with AND.
func (h *CourseHandler) List(c *fiber.Ctx) error {
	q := h.DB.Model(&models.Course{})

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if isFree := c.Query("is_free"); isFree != "" {
		free, err := strconv.ParseBool(isFree)
		if err != nil {
			return badRequest(c, "invalid is_free")
		}
		if free {
			q = q.Where("price = 0")
		} else {
			q = q.Where("price > 0")
		}
	}

	var courses []models.Course
	if err := q.Find(&courses).Error; err != nil {
		return fail500(c, "failed to fetch courses")
	}
	return ok(c, courses)
}

func (h *CourseHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid course id")
	}

	var course models.Course
	if err := h.DB.First(&course, "id = ?", id).Error; err != nil {
		return notFound(c, "course not found")
	}
	return ok(c, course)
}
