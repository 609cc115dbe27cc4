package geo

import (
	"fmt"
	"math"

	"github.com/krissstine/petcarewithollama/internal/domain/entities"
	apperrors "github.com/krissstine/petcarewithollama/pkg/errors"
)

const earthRadiusKm = 6371.0

// Distance returns the great-circle distance between two coordinates in
// kilometers using the haversine formula. The result keeps full precision;
// callers round with RoundKm only when presenting a distance, so sorting is
// never distorted by premature rounding.
func Distance(from, to entities.Location) float64 {
	lat1 := toRadians(from.Latitude)
	lat2 := toRadians(to.Latitude)
	deltaLat := toRadians(to.Latitude - from.Latitude)
	deltaLon := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// RoundKm rounds a distance to two decimal places for presentation.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

// ValidateLocation rejects coordinates outside the valid latitude and
// longitude ranges, or non-finite values. Validation happens at the
// boundary; the query engine assumes validated input.
func ValidateLocation(loc entities.Location) error {
	if math.IsNaN(loc.Latitude) || math.IsInf(loc.Latitude, 0) ||
		math.IsNaN(loc.Longitude) || math.IsInf(loc.Longitude, 0) {
		return apperrors.NewValidationError("coordinates must be finite numbers")
	}
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return apperrors.NewValidationError(fmt.Sprintf("latitude %v out of range [-90, 90]", loc.Latitude))
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return apperrors.NewValidationError(fmt.Sprintf("longitude %v out of range [-180, 180]", loc.Longitude))
	}
	return nil
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
