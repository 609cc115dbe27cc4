package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krissstine/petcarewithollama/internal/application/services"
	"github.com/krissstine/petcarewithollama/internal/domain/entities"
)

func sampleClinic() *entities.Clinic {
	return &entities.Clinic{
		ID:             "clinic_0",
		Name:           "Center Vet Clinic",
		Address:        "123 Center Street",
		City:           "Manila",
		Region:         "Metro Manila",
		Contact:        "(02) 8123-4567",
		Services:       "Vaccination, Surgery, Grooming",
		OperatingHours: "24/7",
		Location:       entities.Location{Latitude: 14.5995, Longitude: 120.9842},
		IsEmergency:    true,
	}
}

func TestNearbyClinics_RendersBothOutputs(t *testing.T) {
	svc := services.NewResponseService()

	places := []*entities.NearbyPlace{
		{Kind: entities.PlaceKindClinics, Clinic: sampleClinic(), DistanceKm: 1.25},
	}

	r := svc.NearbyClinics(places, 15)

	assert.Contains(t, r.Display, "Center Vet Clinic")
	assert.Contains(t, r.Display, "1.25km away in Manila")
	assert.Contains(t, r.Display, "EMERGENCY CLINIC")
	assert.Contains(t, r.Speech, "Center Vet Clinic in Manila, 1.25 kilometers away.")
	assert.Contains(t, r.Speech, "Check the map on your screen")
}

func TestNearbyClinics_EmptyResults(t *testing.T) {
	svc := services.NewResponseService()

	r := svc.NearbyClinics(nil, 15)

	assert.Contains(t, r.Display, "No clinics found within 15km")
	assert.Contains(t, r.Speech, "No clinics found nearby")
}

func TestClinicsInCity(t *testing.T) {
	svc := services.NewResponseService()

	r := svc.ClinicsInCity("manila", []*entities.Clinic{sampleClinic()})

	assert.Contains(t, r.Display, "Veterinary Clinics in Manila")
	assert.Contains(t, r.Display, "123 Center Street")
	assert.Contains(t, r.Speech, "veterinary clinics in Manila")
}

func TestClinicsInCity_Empty(t *testing.T) {
	svc := services.NewResponseService()

	r := svc.ClinicsInCity("cagayan de oro", nil)

	assert.Equal(t, "No clinics found in Cagayan De Oro.", r.Display)
	assert.Equal(t, r.Display, r.Speech)
}

func TestNearbyStores(t *testing.T) {
	svc := services.NewResponseService()

	places := []*entities.NearbyPlace{
		{
			Kind: entities.PlaceKindStores,
			Store: &entities.Store{
				Name: "Center Pet Supplies", Contact: "0917-123-4567", StoreType: "Pet Supplies",
			},
			DistanceKm: 2.5,
		},
	}

	r := svc.NearbyStores(places, 15)

	assert.Contains(t, r.Display, "Center Pet Supplies")
	assert.Contains(t, r.Display, "2.50km away")
	assert.Contains(t, r.Speech, "2.50 kilometers away")
}

func TestEmergencyClinics_HotlineAlwaysPresent(t *testing.T) {
	svc := services.NewResponseService()

	withResults := svc.EmergencyClinics([]*entities.Clinic{sampleClinic()})
	assert.Contains(t, withResults.Display, "Center Vet Clinic")
	assert.Contains(t, withResults.Display, "Emergency hotline: 911")
	assert.Contains(t, withResults.Speech, "dial 911")

	empty := svc.EmergencyClinics(nil)
	assert.Contains(t, empty.Display, "No emergency clinics found")
	assert.Contains(t, empty.Display, "Emergency hotline: 911")
	assert.Contains(t, empty.Speech, "dial 911")
}

func TestStatistics_IncludesEveryRegion(t *testing.T) {
	svc := services.NewResponseService()

	stats := &entities.CatalogStatistics{
		TotalClinics:     44,
		EmergencyClinics: 8,
		TotalStores:      77,
		ClinicsByRegion: map[string]int{
			"Metro Manila": 19,
			"Luzon":        11,
			"Visayas":      7,
			"Mindanao":     7,
		},
	}

	r := svc.Statistics(stats)

	assert.Contains(t, r.Display, "Total veterinary clinics in database: 44")
	assert.Contains(t, r.Display, "Emergency/24/7 clinics: 8")
	assert.Contains(t, r.Display, "Pet stores in database: 77")
	for _, region := range entities.Regions {
		assert.Contains(t, r.Display, region)
	}
	assert.Contains(t, r.Speech, "44 veterinary clinics")
	assert.Contains(t, r.Speech, "19 in Metro Manila")
}

func TestGreeting_IncludesLocation(t *testing.T) {
	svc := services.NewResponseService()

	r := svc.Greeting(entities.Location{Latitude: 14.5995, Longitude: 120.9842})

	assert.Contains(t, r.Display, "14.5995, 120.9842")
	assert.Contains(t, r.Speech, "How can I help you today?")
}

func TestVoiceHelpAndUnknown_NonEmpty(t *testing.T) {
	svc := services.NewResponseService()

	for _, r := range []services.RenderedResponse{svc.VoiceHelp(), svc.Unknown()} {
		assert.NotEmpty(t, strings.TrimSpace(r.Display))
		assert.NotEmpty(t, strings.TrimSpace(r.Speech))
	}
}
