package services

import (
	"fmt"
	"strings"

	"github.com/krissstine/petcarewithollama/internal/domain/entities"
)

// ResponseService renders a resolved intent plus query results into two
// strings: a verbose display text and a shorter speech text. Both are
// always non-empty; empty result sets render an explicit "none found"
// message.
type ResponseService struct{}

// NewResponseService creates a new response service
func NewResponseService() *ResponseService {
	return &ResponseService{}
}

// RenderedResponse holds both output forms of a response
type RenderedResponse struct {
	Display string
	Speech  string
}

// NearbyClinics renders a coordinate-based clinic listing
func (s *ResponseService) NearbyClinics(places []*entities.NearbyPlace, radiusKm float64) RenderedResponse {
	if len(places) == 0 {
		return RenderedResponse{
			Display: fmt.Sprintf("No clinics found within %gkm. Try searching for a specific city like Manila, Cebu, or Davao.", radiusKm),
			Speech:  "No clinics found nearby. Try searching for a specific city.",
		}
	}

	var display, speech strings.Builder
	fmt.Fprintf(&display, "Nearby Veterinary Clinics (within %gkm):\n\n", radiusKm)
	speech.WriteString("Here are nearby veterinary clinics. ")

	for i, place := range places {
		clinic := place.Clinic
		fmt.Fprintf(&display, "%d. %s\n", i+1, clinic.Name)
		fmt.Fprintf(&display, "   %.2fkm away in %s\n", place.DistanceKm, clinic.City)
		fmt.Fprintf(&display, "   %s\n", clinic.Contact)
		fmt.Fprintf(&display, "   %s\n", truncate(clinic.Services, 60))
		if clinic.IsEmergency {
			display.WriteString("   EMERGENCY CLINIC\n")
		}
		display.WriteString("\n")

		fmt.Fprintf(&speech, "%s in %s, %.2f kilometers away. ", clinic.Name, clinic.City, place.DistanceKm)
	}

	speech.WriteString("Check the map on your screen for more details.")
	return RenderedResponse{Display: display.String(), Speech: speech.String()}
}

// ClinicsInCity renders a city-based clinic listing
func (s *ResponseService) ClinicsInCity(city string, clinics []*entities.Clinic) RenderedResponse {
	title := titleCase(city)
	if len(clinics) == 0 {
		msg := fmt.Sprintf("No clinics found in %s.", title)
		return RenderedResponse{Display: msg, Speech: msg}
	}

	var display, speech strings.Builder
	fmt.Fprintf(&display, "Veterinary Clinics in %s:\n\n", title)
	fmt.Fprintf(&speech, "Here are veterinary clinics in %s. ", title)

	for _, clinic := range clinics {
		fmt.Fprintf(&display, "- %s\n", clinic.Name)
		fmt.Fprintf(&display, "  %s\n", clinic.Address)
		fmt.Fprintf(&display, "  %s\n", clinic.Contact)
		fmt.Fprintf(&display, "  %s\n\n", truncate(clinic.Services, 50))
		fmt.Fprintf(&speech, "%s. ", clinic.Name)
	}

	return RenderedResponse{Display: display.String(), Speech: speech.String()}
}

// NearbyStores renders a coordinate-based store listing
func (s *ResponseService) NearbyStores(places []*entities.NearbyPlace, radiusKm float64) RenderedResponse {
	if len(places) == 0 {
		return RenderedResponse{
			Display: "No stores found nearby. Try shopping at major pet stores like Pet Express or Cartimar.",
			Speech:  "No stores found nearby.",
		}
	}

	var display, speech strings.Builder
	fmt.Fprintf(&display, "Nearby Pet Stores (within %gkm):\n\n", radiusKm)
	speech.WriteString("Here are nearby pet stores. ")

	for i, place := range places {
		store := place.Store
		fmt.Fprintf(&display, "%d. %s\n", i+1, store.Name)
		fmt.Fprintf(&display, "   %.2fkm away\n", place.DistanceKm)
		fmt.Fprintf(&display, "   %s\n", store.Contact)
		fmt.Fprintf(&display, "   Type: %s\n\n", store.StoreType)

		fmt.Fprintf(&speech, "%s, %.2f kilometers away. ", store.Name, place.DistanceKm)
	}

	return RenderedResponse{Display: display.String(), Speech: speech.String()}
}

// EmergencyClinics renders the emergency clinic listing. The emergency
// hotline footer is appended even when the list is empty.
func (s *ResponseService) EmergencyClinics(clinics []*entities.Clinic) RenderedResponse {
	var display, speech strings.Builder

	if len(clinics) == 0 {
		display.WriteString("No emergency clinics found in the catalog.\n\n")
		speech.WriteString("No emergency clinics found. ")
	} else {
		display.WriteString("24/7 Emergency Veterinary Clinics:\n\n")
		speech.WriteString("Here are emergency veterinary clinics. ")
		for _, clinic := range clinics {
			fmt.Fprintf(&display, "- %s\n", clinic.Name)
			fmt.Fprintf(&display, "  %s - %s\n", clinic.City, clinic.Address)
			fmt.Fprintf(&display, "  %s\n", clinic.Contact)
			fmt.Fprintf(&display, "  %s\n\n", clinic.OperatingHours)
			fmt.Fprintf(&speech, "%s in %s. Contact %s. ", clinic.Name, clinic.City, clinic.Contact)
		}
	}

	display.WriteString("For pet emergencies:\n")
	display.WriteString("- Call the nearest vet clinic immediately\n")
	display.WriteString("- Emergency hotline: 911\n")
	speech.WriteString("For pet emergencies, call the nearest vet clinic immediately or dial 911.")

	return RenderedResponse{Display: display.String(), Speech: speech.String()}
}

// Statistics renders catalog totals with the per-region breakdown
func (s *ResponseService) Statistics(stats *entities.CatalogStatistics) RenderedResponse {
	var display strings.Builder
	display.WriteString("Philippine Pet Care Statistics:\n\n")
	fmt.Fprintf(&display, "- Total veterinary clinics in database: %d\n", stats.TotalClinics)
	fmt.Fprintf(&display, "- Emergency/24/7 clinics: %d\n", stats.EmergencyClinics)
	fmt.Fprintf(&display, "- Pet stores in database: %d\n\n", stats.TotalStores)

	display.WriteString("By Region:\n")
	for _, region := range entities.Regions {
		fmt.Fprintf(&display, "- %s: %d clinics\n", region, stats.ClinicsByRegion[region])
	}

	var speech strings.Builder
	fmt.Fprintf(&speech, "There are %d veterinary clinics in our database. ", stats.TotalClinics)
	parts := make([]string, 0, len(entities.Regions))
	for _, region := range entities.Regions {
		parts = append(parts, fmt.Sprintf("%d in %s", stats.ClinicsByRegion[region], region))
	}
	speech.WriteString(strings.Join(parts, ", ") + ".")

	return RenderedResponse{Display: display.String(), Speech: speech.String()}
}

// Greeting renders the welcome message with the caller's location
func (s *ResponseService) Greeting(loc entities.Location) RenderedResponse {
	var display strings.Builder
	display.WriteString("Hello! I'm your PH PetCare Voice Assistant\n\n")
	fmt.Fprintf(&display, "Your location: %.4f, %.4f\n\n", loc.Latitude, loc.Longitude)
	display.WriteString("I can help you find:\n")
	display.WriteString("- Veterinary clinics - try 'vets near me' or 'clinics in Manila'\n")
	display.WriteString("- Pet stores - 'pet stores near me'\n")
	display.WriteString("- Emergency clinics - 'emergency vet'\n")
	display.WriteString("- Statistics - 'how many clinics'\n")

	speech := "Hello! I'm your pet care voice assistant. Your location is set. " +
		"You can ask me to find veterinary clinics, pet stores, or emergency services. How can I help you today?"

	return RenderedResponse{Display: display.String(), Speech: speech}
}

// VoiceHelp renders the voice assistant feature summary
func (s *ResponseService) VoiceHelp() RenderedResponse {
	var display strings.Builder
	display.WriteString("Voice Assistant Features:\n\n")
	display.WriteString("I can speak back to you! Just ask me:\n\n")
	display.WriteString("- 'Find vets near me' - I'll speak nearby clinics\n")
	display.WriteString("- 'Clinics in Manila' - list clinics in a specific city\n")
	display.WriteString("- 'Emergency vet' - emergency contacts\n")
	display.WriteString("- 'Pet stores' - nearby pet shops\n")
	display.WriteString("- 'How many clinics?' - statistics\n")

	speech := "I am your voice assistant. You can ask me to find vets near you, " +
		"search for clinics in any city, or locate emergency services."

	return RenderedResponse{Display: display.String(), Speech: speech}
}

// Unknown renders the default help response
func (s *ResponseService) Unknown() RenderedResponse {
	var display strings.Builder
	display.WriteString("PH PetCare Assistant\n\n")
	display.WriteString("I can help you find veterinary clinics and pet stores across the Philippines.\n\n")
	display.WriteString("Try asking:\n")
	display.WriteString("- 'Find vets near me'\n")
	display.WriteString("- 'Clinics in Manila'\n")
	display.WriteString("- 'Emergency vet'\n")
	display.WriteString("- 'Pet stores'\n")
	display.WriteString("- 'How many clinics?'\n")

	speech := "I can help you find veterinary clinics and pet stores across the Philippines. " +
		"Try asking me to find vets near you, or search for clinics in specific cities."

	return RenderedResponse{Display: display.String(), Speech: speech}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
