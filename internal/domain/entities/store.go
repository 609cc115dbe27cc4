package entities

// Store represents a pet store in the catalog
type Store struct {
	ID        string   `json:"id" db:"id"`
	Name      string   `json:"name" db:"name"`
	Address   string   `json:"address" db:"address"`
	Location  Location `json:"location" db:"-"`
	Contact   string   `json:"contact" db:"contact"`
	StoreType string   `json:"store_type" db:"store_type"`
	Verified  bool     `json:"verified" db:"verified"`
}
