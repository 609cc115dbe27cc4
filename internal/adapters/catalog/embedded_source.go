package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/krissstine/petcarewithollama/internal/domain/entities"
	"github.com/krissstine/petcarewithollama/internal/domain/geo"
	"github.com/krissstine/petcarewithollama/internal/domain/repositories"
	apperrors "github.com/krissstine/petcarewithollama/pkg/errors"
)

//go:embed data/clinics.json
var clinicsData []byte

//go:embed data/stores.json
var storesData []byte

type clinicRecord struct {
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Contact        string  `json:"contact"`
	Email          string  `json:"email"`
	Services       string  `json:"services"`
	OperatingHours string  `json:"operating_hours"`
	Region         string  `json:"region"`
	City           string  `json:"city"`
	IsEmergency    bool    `json:"is_emergency"`
	Is24Hours      bool    `json:"is_24_hours"`
	Verified       bool    `json:"verified"`
}

type storeRecord struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Contact   string  `json:"contact"`
	StoreType string  `json:"store_type"`
	Verified  bool    `json:"verified"`
}

// EmbeddedSource loads the catalog from the dataset compiled into the
// binary. It is the default catalog source.
type EmbeddedSource struct{}

// NewEmbeddedSource creates a catalog source backed by the embedded dataset
func NewEmbeddedSource() repositories.CatalogSource {
	return &EmbeddedSource{}
}

// Load parses and validates the embedded dataset into a catalog snapshot
func (s *EmbeddedSource) Load(ctx context.Context) (*entities.Catalog, error) {
	var clinicRecords []clinicRecord
	if err := json.Unmarshal(clinicsData, &clinicRecords); err != nil {
		return nil, apperrors.NewInternalError("failed to parse embedded clinic dataset", err)
	}

	var storeRecords []storeRecord
	if err := json.Unmarshal(storesData, &storeRecords); err != nil {
		return nil, apperrors.NewInternalError("failed to parse embedded store dataset", err)
	}

	clinics := make([]*entities.Clinic, 0, len(clinicRecords))
	for i, r := range clinicRecords {
		clinic := &entities.Clinic{
			ID:             fmt.Sprintf("clinic_%d", i),
			Name:           r.Name,
			Address:        r.Address,
			Location:       entities.Location{Latitude: r.Latitude, Longitude: r.Longitude},
			Contact:        r.Contact,
			Email:          r.Email,
			Services:       r.Services,
			OperatingHours: r.OperatingHours,
			Region:         r.Region,
			City:           r.City,
			IsEmergency:    r.IsEmergency,
			Is24Hours:      r.Is24Hours,
			Verified:       r.Verified,
		}
		if err := validateClinic(clinic); err != nil {
			return nil, err
		}
		clinics = append(clinics, clinic)
	}

	stores := make([]*entities.Store, 0, len(storeRecords))
	for i, r := range storeRecords {
		store := &entities.Store{
			ID:        fmt.Sprintf("store_%d", i),
			Name:      r.Name,
			Address:   r.Address,
			Location:  entities.Location{Latitude: r.Latitude, Longitude: r.Longitude},
			Contact:   r.Contact,
			StoreType: r.StoreType,
			Verified:  r.Verified,
		}
		if err := validateStore(store); err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}

	return entities.NewCatalog(clinics, stores), nil
}

func validateClinic(c *entities.Clinic) error {
	if c.Name == "" || c.Address == "" || c.City == "" || c.Region == "" {
		return apperrors.NewValidationError(fmt.Sprintf("clinic %s has empty required fields", c.ID))
	}
	if err := geo.ValidateLocation(c.Location); err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("clinic %s: %v", c.ID, err))
	}
	return nil
}

func validateStore(s *entities.Store) error {
	if s.Name == "" || s.Address == "" {
		return apperrors.NewValidationError(fmt.Sprintf("store %s has empty required fields", s.ID))
	}
	if err := geo.ValidateLocation(s.Location); err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("store %s: %v", s.ID, err))
	}
	return nil
}
