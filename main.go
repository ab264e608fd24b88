package main

import (
	"log"
	"os"

	"xaymart/config"
	"xaymart/db"
	"xaymart/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Initialize database
	db.InitDatabase(cfg)

	// Create uploads directory if it doesn't exist
	if _, err := os.Stat(cfg.Upload.Dir); os.IsNotExist(err) {
		os.Mkdir(cfg.Upload.Dir, 0755)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Upload.MaxSizeMB)*1024*1024 + 1024*1024,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Serve uploaded files
	app.Static(cfg.Upload.PublicPath, "./"+cfg.Upload.Dir)

	// Setup routes
	routes.SetupRoutes(app, cfg)

	// Start server
	log.Fatal(app.Listen(cfg.Server.Addr))
}
