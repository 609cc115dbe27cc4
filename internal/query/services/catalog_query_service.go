package services

import (
	"sort"
	"strings"

	"github.com/krissstine/petcarewithollama/internal/domain/entities"
	"github.com/krissstine/petcarewithollama/internal/domain/geo"
	"github.com/krissstine/petcarewithollama/pkg/config"
)

// CatalogQueryService handles read-only proximity and filter queries over
// the catalog. Every operation is a pure read; the catalog is immutable
// after load, so the service is safe for concurrent use without locking.
type CatalogQueryService struct {
	catalog *entities.Catalog
	limits  config.QueryConfig
}

// NewCatalogQueryService creates a new catalog query service
func NewCatalogQueryService(catalog *entities.Catalog, limits config.QueryConfig) *CatalogQueryService {
	return &CatalogQueryService{
		catalog: catalog,
		limits:  limits,
	}
}

// NearbyParams defines parameters for a radius query. The radius boundary
// is inclusive: a place exactly RadiusKm away is returned.
type NearbyParams struct {
	Center   entities.Location
	RadiusKm float64
	Limit    int
	Kind     entities.PlaceKind
}

// Limits returns the configured query defaults
func (s *CatalogQueryService) Limits() config.QueryConfig {
	return s.limits
}

// Nearby returns catalog entries of the requested kind within RadiusKm of
// the center, sorted ascending by distance and truncated to Limit. The sort
// is stable, so entries at equal distance keep their catalog order. Sorting
// uses full-precision distances; DistanceKm is rounded to two decimals
// afterwards for presentation.
func (s *CatalogQueryService) Nearby(params NearbyParams) []*entities.NearbyPlace {
	var places []*entities.NearbyPlace

	if params.Kind == entities.PlaceKindClinics || params.Kind == entities.PlaceKindAll {
		for _, clinic := range s.catalog.Clinics() {
			d := geo.Distance(params.Center, clinic.Location)
			if d <= params.RadiusKm {
				places = append(places, &entities.NearbyPlace{
					Kind:       entities.PlaceKindClinics,
					Clinic:     clinic,
					DistanceKm: d,
				})
			}
		}
	}

	if params.Kind == entities.PlaceKindStores || params.Kind == entities.PlaceKindAll {
		for _, store := range s.catalog.Stores() {
			d := geo.Distance(params.Center, store.Location)
			if d <= params.RadiusKm {
				places = append(places, &entities.NearbyPlace{
					Kind:       entities.PlaceKindStores,
					Store:      store,
					DistanceKm: d,
				})
			}
		}
	}

	sort.SliceStable(places, func(i, j int) bool {
		return places[i].DistanceKm < places[j].DistanceKm
	})

	if params.Limit > 0 && len(places) > params.Limit {
		places = places[:params.Limit]
	}

	for _, p := range places {
		p.DistanceKm = geo.RoundKm(p.DistanceKm)
	}

	return places
}

// ByCity returns clinics whose city contains the given name, case
// insensitively, in catalog order. Partial matches are allowed, so
// "quezon" matches "Quezon City".
func (s *CatalogQueryService) ByCity(city string) []*entities.Clinic {
	needle := strings.ToLower(city)
	results := []*entities.Clinic{}
	for _, clinic := range s.catalog.Clinics() {
		if strings.Contains(strings.ToLower(clinic.City), needle) {
			results = append(results, clinic)
		}
	}
	return results
}

// ByRegion returns clinics whose region contains the given name, case
// insensitively, in catalog order.
func (s *CatalogQueryService) ByRegion(region string) []*entities.Clinic {
	needle := strings.ToLower(region)
	results := []*entities.Clinic{}
	for _, clinic := range s.catalog.Clinics() {
		if strings.Contains(strings.ToLower(clinic.Region), needle) {
			results = append(results, clinic)
		}
	}
	return results
}

// Emergency returns clinics flagged as emergency or 24-hour, in catalog
// order.
func (s *CatalogQueryService) Emergency() []*entities.Clinic {
	results := []*entities.Clinic{}
	for _, clinic := range s.catalog.Clinics() {
		if clinic.IsEmergency || clinic.Is24Hours {
			results = append(results, clinic)
		}
	}
	return results
}

// SearchParams defines parameters for a free-text clinic search
type SearchParams struct {
	Query  string
	City   string
	Region string
}

// Search returns clinics matching any of the provided filters: free text
// against name/address/city, plus optional city and region filters. When
// every filter is empty the whole clinic catalog is returned, capped at the
// configured search limit. That browse-all fallback is deliberate.
func (s *CatalogQueryService) Search(params SearchParams) []*entities.Clinic {
	query := strings.ToLower(strings.TrimSpace(params.Query))
	city := strings.ToLower(strings.TrimSpace(params.City))
	region := strings.ToLower(strings.TrimSpace(params.Region))

	results := []*entities.Clinic{}
	for _, clinic := range s.catalog.Clinics() {
		match := false

		if query != "" &&
			(strings.Contains(strings.ToLower(clinic.Name), query) ||
				strings.Contains(strings.ToLower(clinic.Address), query) ||
				strings.Contains(strings.ToLower(clinic.City), query)) {
			match = true
		}
		if city != "" && strings.Contains(strings.ToLower(clinic.City), city) {
			match = true
		}
		if region != "" && strings.Contains(strings.ToLower(clinic.Region), region) {
			match = true
		}
		if query == "" && city == "" && region == "" {
			match = true
		}

		if match {
			results = append(results, clinic)
		}
	}

	if s.limits.SearchLimit > 0 && len(results) > s.limits.SearchLimit {
		results = results[:s.limits.SearchLimit]
	}

	return results
}

// FindByName returns the first clinic whose name contains the given text,
// case insensitively, or nil when none matches.
func (s *CatalogQueryService) FindByName(name string) *entities.Clinic {
	needle := strings.ToLower(name)
	for _, clinic := range s.catalog.Clinics() {
		if strings.Contains(strings.ToLower(clinic.Name), needle) {
			return clinic
		}
	}
	return nil
}

// Statistics aggregates catalog counts. The per-region breakdown counts
// clinics whose region equals each enumerated region exactly, not by
// substring.
func (s *CatalogQueryService) Statistics() *entities.CatalogStatistics {
	stats := &entities.CatalogStatistics{
		TotalClinics:    len(s.catalog.Clinics()),
		TotalStores:     len(s.catalog.Stores()),
		ClinicsByRegion: make(map[string]int, len(entities.Regions)),
	}

	for _, region := range entities.Regions {
		stats.ClinicsByRegion[region] = 0
	}

	for _, clinic := range s.catalog.Clinics() {
		if clinic.IsEmergency || clinic.Is24Hours {
			stats.EmergencyClinics++
		}
		if _, ok := stats.ClinicsByRegion[clinic.Region]; ok {
			stats.ClinicsByRegion[clinic.Region]++
		}
	}

	return stats
}
