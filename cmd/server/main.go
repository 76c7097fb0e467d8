package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"inventory-allocation-service/internal/adapters/planstore"
	"inventory-allocation-service/internal/adapters/repositories"
	"inventory-allocation-service/internal/api"
	"inventory-allocation-service/internal/config"
	"inventory-allocation-service/internal/platform/db"
	"inventory-allocation-service/internal/ports"
)

// main is the application composition root.
// It wires a dataset source and a plan store behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	source := config.Get("DATA_SOURCE", "csv")
	dataDir := config.Get("DATA_DIR", "data")
	port := config.Get("PORT", "8080")
	timeLimit := config.GetDuration("TIME_LIMIT", 20*time.Second)

	repo, cleanup, err := newDatasetRepository(source, dataDir)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	store, err := newPlanStore()
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(repo, store, timeLimit)

	// Timeouts leave room for allocation runs at the default solver limit.
	log.Printf("Server listening addr=:%s source=%s", port, source)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// newDatasetRepository selects the dataset backend. The returned cleanup
// closes any underlying connection pool.
func newDatasetRepository(source, dataDir string) (ports.DatasetRepository, func(), error) {
	switch source {
	case "csv":
		return repositories.NewCSVDatasetRepository(dataDir), func() {}, nil

	case "sqlite":
		conn, err := db.OpenSqlite(config.Get("SQLITE_PATH", "data/app.db"))
		if err != nil {
			return nil, nil, err
		}
		// Initialize schema and seed demo data on startup for local runs.
		if err := initAndSeed(conn, dataDir); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return repositories.NewSqliteDatasetRepository(conn), func() { conn.Close() }, nil

	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, nil, errors.New("DATABASE_URL is required when DATA_SOURCE=postgres")
		}
		conn, err := db.OpenPostgres(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewPostgresDatasetRepository(conn), func() { conn.Close() }, nil

	case "memory":
		return repositories.NewSampleDatasetRepository(time.Now().UTC()), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unsupported DATA_SOURCE %q", source)
}

func initAndSeed(conn *sql.DB, dataDir string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromCSV(context.Background(), conn, dataDir); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// newPlanStore keeps plans in Redis when REDIS_URL is set, in memory otherwise.
func newPlanStore() (ports.PlanStore, error) {
	redisURL := os.Getenv("REDIS_URL")
	if strings.TrimSpace(redisURL) == "" {
		return planstore.NewMemory(), nil
	}

	ttl := config.GetDuration("PLAN_TTL", 0)
	return planstore.NewRedis(redisURL, ttl)
}
