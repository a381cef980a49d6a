package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/univault/univault-api/database"
)

// Seeds the persistent catalogue. Only useful with STORE_DRIVER=postgres;
// the in-memory store is seeded on every startup anyway.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	separator := strings.Repeat("=", 60)
	fmt.Println(separator)
	fmt.Println("UniVault - Catalogue Seeding")
	fmt.Println(separator)

	if err := database.RunSeeds(context.Background(), store.Research(), store.Institutions()); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Println("Seeding completed successfully")
}
