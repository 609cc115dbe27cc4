package catalog

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/krissstine/petcarewithollama/internal/domain/entities"
	"github.com/krissstine/petcarewithollama/internal/domain/repositories"
	"github.com/krissstine/petcarewithollama/internal/infrastructure/clients/postgres"
	apperrors "github.com/krissstine/petcarewithollama/pkg/errors"
)

// PostgresSource loads the catalog snapshot from PostgreSQL at startup.
// The tables are provisioned by scripts/seed.go; after loading, the catalog
// is served from memory and the database is not consulted again.
type PostgresSource struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPostgresSource creates a catalog source backed by PostgreSQL
func NewPostgresSource(client *postgres.Client) repositories.CatalogSource {
	return &PostgresSource{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Load reads all clinic and store rows in insertion order
func (s *PostgresSource) Load(ctx context.Context) (*entities.Catalog, error) {
	clinics, err := s.loadClinics(ctx)
	if err != nil {
		return nil, err
	}
	stores, err := s.loadStores(ctx)
	if err != nil {
		return nil, err
	}
	return entities.NewCatalog(clinics, stores), nil
}

func (s *PostgresSource) loadClinics(ctx context.Context) ([]*entities.Clinic, error) {
	query, args, err := s.db.Select(
		"id", "name", "address", "latitude", "longitude", "contact", "email",
		"services", "operating_hours", "region", "city",
		"is_emergency", "is_24_hours", "verified",
	).From("vet_clinics").
		Order(goqu.I("position").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build clinic query", err)
	}

	rows, err := s.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load clinics", err)
	}
	defer rows.Close()

	var clinics []*entities.Clinic
	for rows.Next() {
		clinic := &entities.Clinic{}
		err := rows.Scan(
			&clinic.ID,
			&clinic.Name,
			&clinic.Address,
			&clinic.Location.Latitude,
			&clinic.Location.Longitude,
			&clinic.Contact,
			&clinic.Email,
			&clinic.Services,
			&clinic.OperatingHours,
			&clinic.Region,
			&clinic.City,
			&clinic.IsEmergency,
			&clinic.Is24Hours,
			&clinic.Verified,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan clinic row", err)
		}
		if err := validateClinic(clinic); err != nil {
			return nil, err
		}
		clinics = append(clinics, clinic)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate clinic rows", err)
	}

	return clinics, nil
}

func (s *PostgresSource) loadStores(ctx context.Context) ([]*entities.Store, error) {
	query, args, err := s.db.Select(
		"id", "name", "address", "latitude", "longitude", "contact",
		"store_type", "verified",
	).From("pet_stores").
		Order(goqu.I("position").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build store query", err)
	}

	rows, err := s.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load stores", err)
	}
	defer rows.Close()

	var stores []*entities.Store
	for rows.Next() {
		store := &entities.Store{}
		err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.Address,
			&store.Location.Latitude,
			&store.Location.Longitude,
			&store.Contact,
			&store.StoreType,
			&store.Verified,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan store row", err)
		}
		if err := validateStore(store); err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate store rows", err)
	}

	return stores, nil
}
