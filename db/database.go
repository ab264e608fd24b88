package db

import (
	"log"
	"os"
	"path/filepath"

	"xaymart/config"
	"xaymart/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDatabase(cfg *config.Config) {
	var err error
	dbPath := cfg.DB.Path

	// Ensure the directory exists (create if it doesn't)
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal("Failed to create database directory:", err)
		}
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		log.Println("Database file does not exist, creating:", dbPath)
		file, err := os.Create(dbPath)
		if err != nil {
			log.Fatal("Failed to create database file:", err)
		}
		file.Close()
	}

	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected successfully at", dbPath)

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	seedAdmin(DB, cfg.Admin)
}

// Migrate runs AutoMigrate for every model. Shared with the test setup.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Category{}, &models.ProductType{}, &models.Collection{},
		&models.Brand{}, &models.ProductGroup{}, &models.Product{},
		&models.Post{}, &models.Banner{}, &models.Partner{}, &models.Project{},
		&models.AdminUser{}, &models.QuoteRequest{}, &models.QuoteItem{},
	)
}

// seedAdmin creates the initial back-office account when none exists.
func seedAdmin(gdb *gorm.DB, cfg config.AdminConfig) {
	var count int64
	if err := gdb.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to check admin users:", err)
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash seed admin password:", err)
	}
	admin := models.AdminUser{
		Email:        cfg.SeedEmail,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := gdb.Create(&admin).Error; err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}
	log.Println("Seeded admin user:", admin.Email)
}
