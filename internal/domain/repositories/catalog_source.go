package repositories

import (
	"context"

	"github.com/krissstine/petcarewithollama/internal/domain/entities"
)

// CatalogSource loads the catalog snapshot at startup. The returned catalog
// is immutable for the process lifetime; sources are not consulted again
// after a successful load.
type CatalogSource interface {
	Load(ctx context.Context) (*entities.Catalog, error)
}
