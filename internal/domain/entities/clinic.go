package entities

// Clinic represents a veterinary clinic in the catalog
type Clinic struct {
	ID             string   `json:"id" db:"id"`
	Name           string   `json:"name" db:"name"`
	Address        string   `json:"address" db:"address"`
	Location       Location `json:"location" db:"-"`
	Contact        string   `json:"contact" db:"contact"`
	Email          string   `json:"email,omitempty" db:"email"`
	Services       string   `json:"services" db:"services"`
	OperatingHours string   `json:"operating_hours" db:"operating_hours"`
	Region         string   `json:"region" db:"region"`
	City           string   `json:"city" db:"city"`
	IsEmergency    bool     `json:"is_emergency" db:"is_emergency"`
	Is24Hours      bool     `json:"is_24_hours" db:"is_24_hours"`
	Verified       bool     `json:"verified" db:"verified"`
}

// Location represents geographical coordinates
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}
