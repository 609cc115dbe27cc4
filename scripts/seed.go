package main

import (
	"context"
	"log"
	"os"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"

	"github.com/krissstine/petcarewithollama/internal/adapters/catalog"
	"github.com/krissstine/petcarewithollama/internal/infrastructure/clients/postgres"
	"github.com/krissstine/petcarewithollama/pkg/config"
)

// Seeds the vet_clinics and pet_stores tables from the embedded dataset so
// the API can run with CATALOG_SOURCE=postgres.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if err := createTables(ctx, pgClient); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				vet_clinics,
				pet_stores
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	snapshot, err := catalog.NewEmbeddedSource().Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load embedded dataset: %v", err)
	}

	db := goqu.New("postgres", pgClient.DB())

	for i, clinic := range snapshot.Clinics() {
		query, args, err := db.Insert("vet_clinics").Rows(goqu.Record{
			"id":              uuid.New().String(),
			"position":        i,
			"name":            clinic.Name,
			"address":         clinic.Address,
			"latitude":        clinic.Location.Latitude,
			"longitude":       clinic.Location.Longitude,
			"contact":         clinic.Contact,
			"email":           clinic.Email,
			"services":        clinic.Services,
			"operating_hours": clinic.OperatingHours,
			"region":          clinic.Region,
			"city":            clinic.City,
			"is_emergency":    clinic.IsEmergency,
			"is_24_hours":     clinic.Is24Hours,
			"verified":        clinic.Verified,
		}).ToSQL()
		if err != nil {
			log.Fatalf("Failed to build clinic insert: %v", err)
		}
		if _, err := pgClient.DB().ExecContext(ctx, query, args...); err != nil {
			log.Printf("Failed to insert clinic %s: %v", clinic.Name, err)
		}
	}
	log.Printf("Seeded %d clinics", len(snapshot.Clinics()))

	for i, store := range snapshot.Stores() {
		query, args, err := db.Insert("pet_stores").Rows(goqu.Record{
			"id":         uuid.New().String(),
			"position":   i,
			"name":       store.Name,
			"address":    store.Address,
			"latitude":   store.Location.Latitude,
			"longitude":  store.Location.Longitude,
			"contact":    store.Contact,
			"store_type": store.StoreType,
			"verified":   store.Verified,
		}).ToSQL()
		if err != nil {
			log.Fatalf("Failed to build store insert: %v", err)
		}
		if _, err := pgClient.DB().ExecContext(ctx, query, args...); err != nil {
			log.Printf("Failed to insert store %s: %v", store.Name, err)
		}
	}
	log.Printf("Seeded %d stores", len(snapshot.Stores()))
}

func createTables(ctx context.Context, pgClient *postgres.Client) error {
	_, err := pgClient.DB().ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS vet_clinics (
			id TEXT PRIMARY KEY,
			position INT NOT NULL,
			name TEXT NOT NULL,
			address TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			contact TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			services TEXT NOT NULL DEFAULT '',
			operating_hours TEXT NOT NULL DEFAULT '',
			region TEXT NOT NULL,
			city TEXT NOT NULL,
			is_emergency BOOLEAN NOT NULL DEFAULT FALSE,
			is_24_hours BOOLEAN NOT NULL DEFAULT FALSE,
			verified BOOLEAN NOT NULL DEFAULT FALSE
		);

		CREATE TABLE IF NOT EXISTS pet_stores (
			id TEXT PRIMARY KEY,
			position INT NOT NULL,
			name TEXT NOT NULL,
			address TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			contact TEXT NOT NULL DEFAULT '',
			store_type TEXT NOT NULL DEFAULT '',
			verified BOOLEAN NOT NULL DEFAULT FALSE
		);
	`)
	return err
}
