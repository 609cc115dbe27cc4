package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krissstine/petcarewithollama/internal/adapters/catalog"
	"github.com/krissstine/petcarewithollama/internal/domain/geo"
)

func TestEmbeddedSource_LoadsFullDataset(t *testing.T) {
	snapshot, err := catalog.NewEmbeddedSource().Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, snapshot.Clinics(), 44)
	assert.Len(t, snapshot.Stores(), 77)
}

func TestEmbeddedSource_RegionBreakdown(t *testing.T) {
	snapshot, err := catalog.NewEmbeddedSource().Load(context.Background())
	require.NoError(t, err)

	byRegion := map[string]int{}
	emergency := 0
	for _, clinic := range snapshot.Clinics() {
		byRegion[clinic.Region]++
		if clinic.IsEmergency || clinic.Is24Hours {
			emergency++
		}
	}

	assert.Equal(t, 19, byRegion["Metro Manila"])
	assert.Equal(t, 11, byRegion["Luzon"])
	assert.Equal(t, 7, byRegion["Visayas"])
	assert.Equal(t, 7, byRegion["Mindanao"])
	assert.Equal(t, 8, emergency)
}

func TestEmbeddedSource_EveryRecordIsValid(t *testing.T) {
	snapshot, err := catalog.NewEmbeddedSource().Load(context.Background())
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, clinic := range snapshot.Clinics() {
		assert.NotEmpty(t, clinic.ID)
		assert.False(t, seen[clinic.ID], "duplicate clinic id %s", clinic.ID)
		seen[clinic.ID] = true
		assert.NotEmpty(t, clinic.Name)
		assert.NotEmpty(t, clinic.City)
		assert.NoError(t, geo.ValidateLocation(clinic.Location))
	}
	for _, store := range snapshot.Stores() {
		assert.NotEmpty(t, store.ID)
		assert.False(t, seen[store.ID], "duplicate store id %s", store.ID)
		seen[store.ID] = true
		assert.NotEmpty(t, store.Name)
		assert.NoError(t, geo.ValidateLocation(store.Location))
	}
}

func TestEmbeddedSource_StableOrder(t *testing.T) {
	src := catalog.NewEmbeddedSource()

	first, err := src.Load(context.Background())
	require.NoError(t, err)
	second, err := src.Load(context.Background())
	require.NoError(t, err)

	require.Equal(t, len(first.Clinics()), len(second.Clinics()))
	for i := range first.Clinics() {
		assert.Equal(t, first.Clinics()[i].Name, second.Clinics()[i].Name)
	}
}
