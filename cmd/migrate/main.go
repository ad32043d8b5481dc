package main

import (
	"log"
	"os"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/dsn"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/handler"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/repository"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	repo, err := repository.New(dsnStr)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database migration completed successfully")

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	staffPassword := os.Getenv("SEED_STAFF_PASSWORD")
	if adminPassword == "" || staffPassword == "" {
		log.Println("SEED_ADMIN_PASSWORD/SEED_STAFF_PASSWORD not set, skipping seed")
		return
	}

	err = repo.SeedDefaults(
		handler.GenerateHashString(adminPassword),
		handler.GenerateHashString(staffPassword),
	)
	if err != nil {
		log.Fatalf("Failed to seed defaults: %v", err)
	}
	log.Println("Default accounts and restaurant seeded")
}
