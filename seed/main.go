// cmd/seed/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/heartwired/valentine_api/seed/seeders"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Parse command line flags
	var (
		seedType = flag.String("type", "all", "Type of seeding: all, content, admin")
		dsn      = flag.String("dsn", "", "Database DSN (overrides DATABASE_URL env var)")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	databaseDSN := *dsn
	if databaseDSN == "" {
		databaseDSN = os.Getenv("DATABASE_URL")
		if databaseDSN == "" {
			databaseDSN = defaultDSN()
		}
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(databaseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database")

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		err = mainSeeder.SeedAll()
	case "content":
		log.Println("Seeding content only...")
		err = mainSeeder.SeedContentOnly()
	case "admin":
		log.Println("Seeding admin user only...")
		err = mainSeeder.SeedAdminOnly()
	default:
		log.Fatalf("Unknown seed type: %s", *seedType)
	}

	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding finished")
}

func defaultDSN() string {
	get := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		get("DB_HOST", "localhost"),
		get("DB_PORT", "5432"),
		get("DB_USER", "postgres"),
		get("DB_PASSWORD", "postgres"),
		get("DB_NAME", "valentine"),
		get("DB_SSLMODE", "disable"),
	)
}

func showHelp() {
	fmt.Println("Usage: seed [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
}
