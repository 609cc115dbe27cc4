package handlers

import (
	"net/http"
	"net/url"

	queryservices "github.com/krissstine/petcarewithollama/internal/query/services"
)

// ClinicHandler handles clinic-related HTTP requests
type ClinicHandler struct {
	queries *queryservices.CatalogQueryService
}

// NewClinicHandler creates a new clinic handler
func NewClinicHandler(queries *queryservices.CatalogQueryService) *ClinicHandler {
	return &ClinicHandler{
		queries: queries,
	}
}

// SearchClinics handles GET /api/clinics/search?q=&city=&region=
func (h *ClinicHandler) SearchClinics(w http.ResponseWriter, r *http.Request) {
	params := queryservices.SearchParams{
		Query:  r.URL.Query().Get("q"),
		City:   r.URL.Query().Get("city"),
		Region: r.URL.Query().Get("region"),
	}

	clinics := h.queries.Search(params)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"clinics": clinics,
		"count":   len(clinics),
	})
}

// GetEmergencyClinics handles GET /api/clinics/emergency
func (h *ClinicHandler) GetEmergencyClinics(w http.ResponseWriter, r *http.Request) {
	clinics := h.queries.Emergency()

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"clinics": clinics,
		"count":   len(clinics),
	})
}

// GetClinicsByCity handles GET /api/clinics/city/{city}
func (h *ClinicHandler) GetClinicsByCity(w http.ResponseWriter, r *http.Request) {
	city := r.PathValue("city")
	if city == "" {
		respondWithError(w, http.StatusBadRequest, "city is required")
		return
	}

	clinics := h.queries.ByCity(city)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"city":    city,
		"clinics": clinics,
		"count":   len(clinics),
	})
}

// GetClinicDetail handles GET /api/clinics/detail/{name}
func (h *ClinicHandler) GetClinicDetail(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		respondWithError(w, http.StatusBadRequest, "clinic name is required")
		return
	}
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	clinic := h.queries.FindByName(name)
	if clinic == nil {
		respondWithError(w, http.StatusNotFound, "clinic not found")
		return
	}

	respondWithJSON(w, http.StatusOK, clinic)
}

// GetStatistics handles GET /api/statistics
func (h *ClinicHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.queries.Statistics())
}
