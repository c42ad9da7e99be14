package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/creative-hut/backend/internal/models"
)

type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

func (h *DashboardHandler) Routes(r fiber.Router) {
	r.Get("/top-freelancers", h.TopFreelancers)
	r.Get("/dashboard-summary", h.Summary)
}

// TopFreelancers returns up to 6 freelancers in insertion order, each with at
// most one gig attached. Rating and review count are fixed placeholder values
// until a review system exists; there is no real ranking behind this endpoint.
func (h *DashboardHandler) TopFreelancers(c *fiber.Ctx) error {
	var freelancers []models.User
	if err := h.DB.
		Where("role = ?", models.RoleFreelancer).
		Limit(6).
		Find(&freelancers).Error; err != nil {
		return fail500(c, "failed to fetch freelancers")
	}

	out := make([]fiber.Map, 0, len(freelancers))
	for _, u := range freelancers {
		var gigs []models.Gig
		if err := h.DB.
			Where("user_id = ?", u.ID).
			Limit(1).
			Find(&gigs).Error; err != nil {
			return fail500(c, "failed to fetch gigs")
		}

		gigData := make([]fiber.Map, 0, len(gigs))
		for _, g := range gigs {
			gigData = append(gigData, fiber.Map{
				"title":    g.Title,
				"price":    g.Price,
				"delivery": g.Delivery,
			})
		}

		skill := u.Bio
		if skill == "" {
			skill = "Freelancer"
		}

		out = append(out, fiber.Map{
			"id":          u.ID,
			"name":        u.Name,
			"skill":       skill,
			"rating":      4.8,
			"reviews":     120,
			"profile_pic": u.ProfilePic,
			"gigs":        gigData,
		})
	}

	return ok(c, out)
}

// Summary counts users, gigs and jobs. Courses, enrollments, applications and
// contacts are not part of the dashboard.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	var userCount, gigCount, jobCount int64
	if err := h.DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fail500(c, "failed to count users")
	}
	if err := h.DB.Model(&models.Gig{}).Count(&gigCount).Error; err != nil {
		return fail500(c, "failed to count gigs")
	}
	if err := h.DB.Model(&models.Job{}).Count(&jobCount).Error; err != nil {
		return fail500(c, "failed to count jobs")
	}

	return ok(c, fiber.Map{
		"total_users": userCount,
		"total_gigs":  gigCount,
		"total_jobs":  jobCount,
	})
}
