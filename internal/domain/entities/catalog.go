package entities

// PlaceKind selects which part of the catalog a proximity query covers.
type PlaceKind string

const (
	PlaceKindClinics PlaceKind = "clinics"
	PlaceKindStores  PlaceKind = "stores"
	PlaceKindAll     PlaceKind = "all"
)

// Catalog is the immutable in-memory collection of clinics and stores.
// It is constructed once at startup by a CatalogSource and never written
// afterwards, so concurrent reads need no synchronization.
type Catalog struct {
	clinics []*Clinic
	stores  []*Store
}

// NewCatalog builds a catalog from loaded clinic and store records.
func NewCatalog(clinics []*Clinic, stores []*Store) *Catalog {
	return &Catalog{clinics: clinics, stores: stores}
}

// Clinics returns the clinic records in catalog order.
func (c *Catalog) Clinics() []*Clinic {
	return c.clinics
}

// Stores returns the store records in catalog order.
func (c *Catalog) Stores() []*Store {
	return c.stores
}

// NearbyPlace is a catalog entry annotated with its distance from a query
// coordinate. Exactly one of Clinic or Store is set. DistanceKm is rounded
// to two decimals for presentation; result ordering is decided on the
// full-precision distance before rounding.
type NearbyPlace struct {
	Kind       PlaceKind `json:"kind"`
	Clinic     *Clinic   `json:"clinic,omitempty"`
	Store      *Store    `json:"store,omitempty"`
	DistanceKm float64   `json:"distance_km"`
}

// Name returns the underlying place name.
func (p *NearbyPlace) Name() string {
	if p.Clinic != nil {
		return p.Clinic.Name
	}
	return p.Store.Name
}

// Location returns the underlying place coordinates.
func (p *NearbyPlace) Location() Location {
	if p.Clinic != nil {
		return p.Clinic.Location
	}
	return p.Store.Location
}

// CatalogStatistics aggregates catalog counts. ClinicsByRegion counts
// clinics whose region equals each enumerated region exactly.
type CatalogStatistics struct {
	TotalClinics     int            `json:"total_clinics"`
	EmergencyClinics int            `json:"emergency_clinics"`
	TotalStores      int            `json:"total_stores"`
	ClinicsByRegion  map[string]int `json:"clinics_by_region"`
}
