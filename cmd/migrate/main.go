package main

import (
	"log"

	"volunteer-connect/internal/config"
	"volunteer-connect/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	for _, table := range []string{"users", "organizations", "opportunities", "applications", "payments"} {
		if !db.Migrator().HasTable(table) {
			log.Fatalf("Table %s missing after migration", table)
		}
	}

	log.Println("Schema is up to date")
}
