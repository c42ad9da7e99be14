package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/creative-hut/backend/internal/models"
)

type JobHandler struct {
	DB *gorm.DB
}

func NewJobHandler(db *gorm.DB) *JobHandler {
	return &JobHandler{DB: db}
}

func (h *JobHandler) Routes(r fiber.Router) {
	r.Post("/jobs", h.Create)
	r.Get("/jobs", h.List)
	r.Get("/jobs/buyer/:id", h.ListByBuyer)
	r.Post("/jobs/apply", h.Apply)
	r.Put("/jobs/:id", h.Update)
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	description := c.FormValue("description")
	category := c.FormValue("category")
	budgetType := c.FormValue("budget_type")
	deadline := c.FormValue("deadline")
	skills := c.FormValue("skills")
	if title == "" || description == "" {
		return badRequest(c, "title and description are required")
	}

	buyerID, err := strconv.Atoi(c.FormValue("buyer_id"))
	if err != nil {
		return badRequest(c, "invalid buyer_id")
	}

	// Status defaults to "Pending"; freelancer stays unset until the buyer
	// assigns one through an update.
	job := models.Job{
		Title:       title,
		Description: description,
		Category:    category,
		BudgetType:  budgetType,
		Deadline:    deadline,
		Skills:      skills,
		BuyerID:     uint(buyerID),
	}
	if err := h.DB.Create(&job).Error; err != nil {
		return fail500(c, "failed to create job")
	}
	return created(c, job)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	var jobs []models.Job
	if err := h.DB.Find(&jobs).Error; err != nil {
		return fail500(c, "failed to fetch jobs")
	}
	return ok(c, jobs)
}

func (h *JobHandler) ListByBuyer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid buyer id")
	}

	var jobs []models.Job
	if err := h.DB.Where("buyer_id = ?", id).Find(&jobs).Error; err != nil {
		return fail500(c, "failed to fetch jobs")
	}
	return ok(c, jobs)
}

// Apply records an application unconditionally: no check that the job or the
// freelancer exist, no check that the job is still open, and no duplicate
// prevention. A freelancer can apply to the same job more than once.
func (h *JobHandler) Apply(c *fiber.Ctx) error {
	jobID, err := strconv.Atoi(c.FormValue("job_id"))
	if err != nil {
		return badRequest(c, "invalid job_id")
	}
	freelancerID, err := strconv.Atoi(c.FormValue("freelancer_id"))
	if err != nil {
		return badRequest(c, "invalid freelancer_id")
	}
	message := c.FormValue("message")
	if message == "" {
		return badRequest(c, "message is required")
	}

	application := models.Application{
		JobID:        uint(jobID),
		FreelancerID: uint(freelancerID),
		Message:      message,
	}
	if err := h.DB.Create(&application).Error; err != nil {
		return fail500(c, "failed to create application")
	}
	return created(c, application)
}

// Update overwrites title, category, deadline and status. Freelancer is
// optional; leaving it empty clears the assignment.
func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid job id")
	}

	title := strings.TrimSpace(c.FormValue("title"))
	category := c.FormValue("category")
	deadline := c.FormValue("deadline")
	status := c.FormValue("status")
	if title == "" || category == "" || deadline == "" || status == "" {
		return badRequest(c, "title, category, deadline and status are required")
	}

	var job models.Job
	if err := h.DB.First(&job, "id = ?", id).Error; err != nil {
		return notFound(c, "job not found")
	}

	job.Title = title
	job.Category = category
	job.Deadline = deadline
	job.Status = status
	if freelancer := c.FormValue("freelancer"); freelancer != "" {
		job.Freelancer = &freelancer
	} else {
		job.Freelancer = nil
	}

	if err := h.DB.Save(&job).Error; err != nil {
		return fail500(c, "failed to update job")
	}
	return ok(c, job)
}
