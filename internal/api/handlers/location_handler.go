package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/krissstine/petcarewithollama/internal/domain/entities"
	"github.com/krissstine/petcarewithollama/internal/domain/geo"
	queryservices "github.com/krissstine/petcarewithollama/internal/query/services"
	"github.com/krissstine/petcarewithollama/pkg/config"
)

var errInvalidCoordinate = errors.New("lat and lng must be valid numbers")

// LocationHandler serves the map view: every catalog entry within the map
// radius of a coordinate.
type LocationHandler struct {
	queries      *queryservices.CatalogQueryService
	assistantCfg config.AssistantConfig
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(queries *queryservices.CatalogQueryService, assistantCfg config.AssistantConfig) *LocationHandler {
	return &LocationHandler{
		queries:      queries,
		assistantCfg: assistantCfg,
	}
}

type locationItem struct {
	Type       string           `json:"type"`
	Name       string           `json:"name"`
	Latitude   float64          `json:"latitude"`
	Longitude  float64          `json:"longitude"`
	DistanceKm float64          `json:"distance_km"`
	Clinic     *entities.Clinic `json:"clinic,omitempty"`
	Store      *entities.Store  `json:"store,omitempty"`
}

// GetLocations handles GET /api/locations?lat=&lng=&type=
func (h *LocationHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	lat, lng, err := h.parseCoordinate(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := geo.ValidateLocation(entities.Location{Latitude: lat, Longitude: lng}); err != nil {
		respondWithAppError(w, err)
		return
	}

	kind := entities.PlaceKindAll
	switch r.URL.Query().Get("type") {
	case "", "all":
	case "clinics":
		kind = entities.PlaceKindClinics
	case "stores":
		kind = entities.PlaceKindStores
	default:
		respondWithError(w, http.StatusBadRequest, "type must be one of all, clinics, stores")
		return
	}

	limits := h.queries.Limits()
	places := h.queries.Nearby(queryservices.NearbyParams{
		Center:   entities.Location{Latitude: lat, Longitude: lng},
		RadiusKm: limits.MapRadiusKm,
		Limit:    limits.MapLimit,
		Kind:     kind,
	})

	items := make([]locationItem, 0, len(places))
	for _, place := range places {
		loc := place.Location()
		items = append(items, locationItem{
			Type:       string(place.Kind),
			Name:       place.Name(),
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			DistanceKm: place.DistanceKm,
			Clinic:     place.Clinic,
			Store:      place.Store,
		})
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"locations": items,
		"count":     len(items),
	})
}

// parseCoordinate reads lat/lng query parameters, falling back to the
// configured default location when both are absent.
func (h *LocationHandler) parseCoordinate(r *http.Request) (float64, float64, error) {
	latStr := r.URL.Query().Get("lat")
	lngStr := r.URL.Query().Get("lng")

	if latStr == "" && lngStr == "" {
		lat, lng := h.assistantCfg.DefaultLocation()
		return lat, lng, nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, errInvalidCoordinate
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return 0, 0, errInvalidCoordinate
	}

	return lat, lng, nil
}
