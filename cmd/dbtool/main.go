package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"inventory-allocation-service/internal/adapters/repositories"
	"inventory-allocation-service/internal/config"
	"inventory-allocation-service/internal/platform/db"
)

// dbtool creates the dataset schema and seeds it from the CSV files.
// It targets Postgres when DATABASE_URL is set, SQLite otherwise.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dataDir := config.Get("DATA_DIR", "data")

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) != "" {
		conn, err := db.OpenPostgres(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		initAndSeedPostgres(conn, dataDir)
		return
	}

	conn, err := db.OpenSqlite(config.Get("SQLITE_PATH", "data/app.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	initAndSeedSqlite(conn, dataDir)
}

func initAndSeedSqlite(conn *sql.DB, dataDir string) {
	log.Println("Initializing sqlite schema...")
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database from CSV...")
	if err := repositories.SeedFromCSV(context.Background(), conn, dataDir); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}

func initAndSeedPostgres(conn *sql.DB, dataDir string) {
	ctx := context.Background()

	log.Println("Initializing postgres schema...")
	if err := repositories.InitPostgresSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database from CSV...")
	if err := repositories.SeedPostgresFromCSV(ctx, conn, dataDir); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
