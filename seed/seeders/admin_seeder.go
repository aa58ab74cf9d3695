package seeders

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/heartwired/valentine_api/model"
)

// AdminSeeder handles seeding the admin user
type AdminSeeder struct {
	db *gorm.DB
}

// NewAdminSeeder creates a new admin seeder
func NewAdminSeeder(db *gorm.DB) *AdminSeeder {
	return &AdminSeeder{db: db}
}

// SeedAdmin creates a default admin user when none exists.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD.
func (s *AdminSeeder) SeedAdmin() error {
	var existingAdmin model.User
	if err := s.db.Where("role = ?", "admin").First(&existingAdmin).Error; err == nil {
		log.Println("Admin user already exists, skipping admin seeding")
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@heartwired.dev"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	id, _ := uuid.NewV7()

	admin := model.User{
		ID:        id.String(),
		Email:     email,
		Username:  "admin",
		Password:  string(hashedPassword),
		Role:      "admin",
		Name:      "Admin",
		LastLogin: time.Now(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.db.Create(&admin).Error; err != nil {
		log.Printf("Error creating admin user: %v", err)
		return err
	}

	log.Printf("Created admin user: %s", admin.Email)
	return nil
}
