package main

import (
	"context"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"glastor/adapters/db/postgres/migrations"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: migrate <database_url> <up|status>")
	}

	databaseURL := os.Args[1]
	command := os.Args[2]

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	migrator := migrations.NewMigrator(db.DB)
	ctx := context.Background()

	switch command {
	case "up":
		if err := migrator.Up(ctx); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Printf("Migrations complete")
	case "status":
		if err := migrator.Status(ctx); err != nil {
			log.Fatalf("Failed to read migration status: %v", err)
		}
	default:
		log.Fatalf("Unknown command %q (use up or status)", command)
	}
}
