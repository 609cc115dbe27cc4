package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krissstine/petcarewithollama/internal/adapters/providers/speech"
	"github.com/krissstine/petcarewithollama/internal/application/services"
	"github.com/krissstine/petcarewithollama/internal/domain/entities"
	"github.com/krissstine/petcarewithollama/internal/domain/providers"
	queryservices "github.com/krissstine/petcarewithollama/internal/query/services"
	"github.com/krissstine/petcarewithollama/pkg/config"
	apperrors "github.com/krissstine/petcarewithollama/pkg/errors"
)

// memoryCache is an in-process CacheProvider stub that counts operations
type memoryCache struct {
	data map[string][]byte
	gets int
	sets int
	hits int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.gets++
	if v, ok := c.data[key]; ok {
		c.hits++
		return v, nil
	}
	return nil, fmt.Errorf("key not found: %s", key)
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	c.sets++
	c.data[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := c.data[key]
	return ok, nil
}

var assistantCfg = config.AssistantConfig{
	DefaultLatitude:  14.5995,
	DefaultLongitude: 120.9842,
	CacheTTLSeconds:  300,
}

func assistantFixture(cache *memoryCache) *services.AssistantService {
	clinics := []*entities.Clinic{
		{
			ID: "clinic_0", Name: "Manila Bay Vet Clinic",
			Address: "Roxas Blvd", City: "Manila", Region: "Metro Manila",
			Contact:  "(02) 8123-4567", Services: "Vaccination, Surgery",
			Location: entities.Location{Latitude: 14.58, Longitude: 120.98},
			IsEmergency: true,
		},
		{
			ID: "clinic_1", Name: "Cebu Animal Hospital",
			Address: "Osmena Blvd", City: "Cebu City", Region: "Visayas",
			Contact:  "(032) 255-1234", Services: "General care",
			Location: entities.Location{Latitude: 10.3157, Longitude: 123.8854},
		},
	}
	stores := []*entities.Store{
		{
			ID: "store_0", Name: "Manila Pet Mart", Address: "Taft Ave",
			StoreType: "Pet Supplies", Contact: "0917-111-2222",
			Location:  entities.Location{Latitude: 14.6, Longitude: 120.99},
		},
	}

	queries := queryservices.NewCatalogQueryService(
		entities.NewCatalog(clinics, stores),
		config.QueryConfig{ChatRadiusKm: 15, ChatLimit: 5, MapRadiusKm: 50, MapLimit: 30, SearchLimit: 50},
	)

	// A typed nil would make the interface non-nil, so only assign when set
	var cacheProvider providers.CacheProvider
	if cache != nil {
		cacheProvider = cache
	}

	return services.NewAssistantService(
		services.NewIntentService(),
		queries,
		services.NewResponseService(),
		speech.NewMockSpeechProvider(),
		cacheProvider,
		nil,
		assistantCfg,
		zerolog.Nop(),
	)
}

func TestChat_NearbyClinicsWithExplicitLocation(t *testing.T) {
	svc := assistantFixture(nil)

	result, err := svc.Chat(context.Background(), services.ChatParams{
		Message:     "find vets near me",
		Latitude:    14.5995,
		Longitude:   120.9842,
		HasLocation: true,
	})

	require.NoError(t, err)
	assert.Equal(t, entities.IntentFindClinics, result.Intent)
	assert.Contains(t, result.Response, "Manila Bay Vet Clinic")
	assert.NotContains(t, result.Response, "Cebu Animal Hospital")
	assert.Contains(t, result.Speech, "kilometers away")
	assert.True(t, result.TTSAvailable)
}

func TestChat_DefaultLocationWhenAbsent(t *testing.T) {
	svc := assistantFixture(nil)

	result, err := svc.Chat(context.Background(), services.ChatParams{Message: "hello"})

	require.NoError(t, err)
	assert.Equal(t, entities.IntentGreeting, result.Intent)
	assert.Contains(t, result.Response, "14.5995, 120.9842")
}

func TestChat_InvalidCoordinateRejected(t *testing.T) {
	svc := assistantFixture(nil)

	_, err := svc.Chat(context.Background(), services.ChatParams{
		Message:     "find vets near me",
		Latitude:    91,
		Longitude:   0,
		HasLocation: true,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestChat_CityQuery(t *testing.T) {
	svc := assistantFixture(nil)

	result, err := svc.Chat(context.Background(), services.ChatParams{Message: "clinics in cebu"})

	require.NoError(t, err)
	assert.Equal(t, entities.IntentFindClinicsInCity, result.Intent)
	assert.Contains(t, result.Response, "Cebu Animal Hospital")
}

func TestChat_StoresQuery(t *testing.T) {
	svc := assistantFixture(nil)

	result, err := svc.Chat(context.Background(), services.ChatParams{
		Message:     "pet stores near me",
		Latitude:    14.5995,
		Longitude:   120.9842,
		HasLocation: true,
	})

	require.NoError(t, err)
	assert.Equal(t, entities.IntentFindStores, result.Intent)
	assert.Contains(t, result.Response, "Manila Pet Mart")
}

func TestChat_UnknownFallsBackToHelp(t *testing.T) {
	svc := assistantFixture(nil)

	result, err := svc.Chat(context.Background(), services.ChatParams{Message: "xyz123"})

	require.NoError(t, err)
	assert.Equal(t, entities.IntentUnknown, result.Intent)
	assert.Contains(t, result.Response, "Try asking")
}

func TestChat_CachesRenderedResponses(t *testing.T) {
	cache := newMemoryCache()
	svc := assistantFixture(cache)

	params := services.ChatParams{Message: "clinics in cebu"}

	first, err := svc.Chat(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 0, cache.hits)

	second, err := svc.Chat(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, first.Response, second.Response)
	assert.Equal(t, first.Intent, second.Intent)
}

func TestChat_CacheKeyNormalizesUtterance(t *testing.T) {
	cache := newMemoryCache()
	svc := assistantFixture(cache)

	_, err := svc.Chat(context.Background(), services.ChatParams{Message: "Clinics in Cebu"})
	require.NoError(t, err)
	_, err = svc.Chat(context.Background(), services.ChatParams{Message: "  clinics in cebu  "})
	require.NoError(t, err)

	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 1, cache.hits)
}

func TestSynthesize_DelegatesToProvider(t *testing.T) {
	svc := assistantFixture(nil)

	audio, err := svc.Synthesize(context.Background(), "hello")
	require.NoError(t, err)
	assert.Contains(t, string(audio), "WAVE")
	assert.True(t, svc.SpeechAvailable())
}
