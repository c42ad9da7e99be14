// Package routes wires every resource handler onto the fiber app.
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/creative-hut/backend/internal/handlers"
	"github.com/creative-hut/backend/internal/storage"
)

func Register(app *fiber.App, gdb *gorm.DB, uploads *storage.Uploads) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Creative Hut API is running."})
	})

	handlers.NewUserHandler(gdb, uploads).Routes(app)
	handlers.NewGigHandler(gdb, uploads).Routes(app)
	handlers.NewJobHandler(gdb).Routes(app)
	handlers.NewCourseHandler(gdb, uploads).Routes(app)
	handlers.NewEnrollmentHandler(gdb).Routes(app)
	handlers.NewContactHandler(gdb).Routes(app)
	handlers.NewDashboardHandler(gdb).Routes(app)
}
