package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/creative-hut/backend/internal/config"
	"github.com/creative-hut/backend/internal/db"
	"github.com/creative-hut/backend/internal/models"
	"github.com/creative-hut/backend/internal/routes"
	"github.com/creative-hut/backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Tables are created at process start if absent; there is no migration
	// mechanism beyond this.
	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Gig{},
		&models.Job{},
		&models.Application{},
		&models.Course{},
		&models.Enrollment{},
		&models.Contact{},
	); err != nil {
		log.Fatal(err)
	}

	app := fiber.New()

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())

	// Cross-origin requests are restricted to the single configured frontend.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendOrigin,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))

	app.Static("/uploads", cfg.UploadDir)

	uploads := storage.New(cfg.UploadDir)
	routes.Register(app, gdb, uploads)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal(err)
	}
}
