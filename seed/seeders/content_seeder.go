package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/heartwired/valentine_api/model"
)

// ContentSeeder fills the default content slots
type ContentSeeder struct {
	db *gorm.DB
}

// NewContentSeeder creates a new content seeder
func NewContentSeeder(db *gorm.DB) *ContentSeeder {
	return &ContentSeeder{db: db}
}

// SeedContent seeds pictures, messages and treats. Each kind is skipped
// when it already has rows so reruns never duplicate slots.
func (s *ContentSeeder) SeedContent() error {
	if err := s.seedPictures(); err != nil {
		return err
	}
	if err := s.seedMessages(); err != nil {
		return err
	}
	return s.seedTreats()
}

func (s *ContentSeeder) seedPictures() error {
	var count int64
	if err := s.db.Model(&model.Picture{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Pictures already seeded, skipping")
		return nil
	}

	pictures := []struct {
		title       string
		description string
		url         string
	}{
		{"A Bouquet For You", "Fresh flowers, picked with you in mind", "/assets/generated/bouquet.dim_512x512.png"},
		{"Sealed With A Kiss", "The softest hello there is", "/assets/generated/kiss.dim_512x512.png"},
		{"Us Under The Stars", "That night we lost track of time", "/assets/generated/stars.dim_512x512.png"},
		{"Sunday Morning", "Coffee, blankets and nowhere to be", "/assets/generated/morning.dim_512x512.png"},
		{"The First Dance", "Off beat and perfect anyway", "/assets/generated/dance.dim_512x512.png"},
	}

	for i, p := range pictures {
		id, _ := uuid.NewV7()
		row := model.Picture{
			ID:          id.String(),
			Title:       p.title,
			Description: p.description,
			URL:         p.url,
			Position:    i,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if err := s.db.Create(&row).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d pictures", len(pictures))
	return nil
}

func (s *ContentSeeder) seedMessages() error {
	var count int64
	if err := s.db.Model(&model.Message{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Messages already seeded, skipping")
		return nil
	}

	messages := []string{
		"Every day with you feels like a small holiday.",
		"You are my favorite notification.",
		"Home is wherever you are laughing.",
		"I would pick you in every universe.",
		"You make ordinary afternoons feel golden.",
	}

	for i, content := range messages {
		id, _ := uuid.NewV7()
		row := model.Message{
			ID:        id.String(),
			Content:   content,
			Position:  i,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.db.Create(&row).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d messages", len(messages))
	return nil
}

func (s *ContentSeeder) seedTreats() error {
	var count int64
	if err := s.db.Model(&model.SweetTreat{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Treats already seeded, skipping")
		return nil
	}

	treats := []struct {
		name        string
		description string
	}{
		{"Chocolate Cupcake", "A cupcake with extra frosting, just how you like it"},
		{"Strawberry Macarons", "Pink, delicate and gone in two bites"},
		{"Honey Waffles", "Warm waffles drowned in honey"},
		{"Cherry Truffles", "Dark chocolate with a cherry surprise"},
		{"Caramel Popcorn", "For our next movie night in"},
	}

	for i, t := range treats {
		id, _ := uuid.NewV7()
		row := model.SweetTreat{
			ID:          id.String(),
			Name:        t.name,
			Description: t.description,
			Position:    i,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if err := s.db.Create(&row).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d treats", len(treats))
	return nil
}
