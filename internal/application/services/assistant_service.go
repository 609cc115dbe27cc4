package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/krissstine/petcarewithollama/internal/domain/entities"
	"github.com/krissstine/petcarewithollama/internal/domain/geo"
	"github.com/krissstine/petcarewithollama/internal/domain/providers"
	"github.com/krissstine/petcarewithollama/internal/infrastructure/observability"
	queryservices "github.com/krissstine/petcarewithollama/internal/query/services"
	"github.com/krissstine/petcarewithollama/pkg/config"
)

// ChatParams is the input to a single assistant exchange. Latitude and
// Longitude are optional; HasLocation distinguishes an absent coordinate
// from an explicit (0, 0).
type ChatParams struct {
	Message     string
	Latitude    float64
	Longitude   float64
	HasLocation bool
}

// ChatResult is the outcome of a single assistant exchange
type ChatResult struct {
	Response     string              `json:"response"`
	Speech       string              `json:"speech"`
	Intent       entities.IntentKind `json:"intent"`
	TTSAvailable bool                `json:"tts_available"`
}

// AssistantService orchestrates one assistant exchange: resolve the
// utterance to an intent, run the matching catalog query, render display
// and speech text. Rendered responses are cached per utterance and
// coordinate; the cache and metrics collaborators are optional.
type AssistantService struct {
	intents   *IntentService
	queries   *queryservices.CatalogQueryService
	responses *ResponseService
	speech    providers.SpeechProvider
	cache     providers.CacheProvider
	metrics   *observability.Metrics
	cfg       config.AssistantConfig
	logger    zerolog.Logger
}

// NewAssistantService creates a new assistant service. cache, speech and
// metrics may be nil.
func NewAssistantService(
	intents *IntentService,
	queries *queryservices.CatalogQueryService,
	responses *ResponseService,
	speech providers.SpeechProvider,
	cache providers.CacheProvider,
	metrics *observability.Metrics,
	cfg config.AssistantConfig,
	logger zerolog.Logger,
) *AssistantService {
	return &AssistantService{
		intents:   intents,
		queries:   queries,
		responses: responses,
		speech:    speech,
		cache:     cache,
		metrics:   metrics,
		cfg:       cfg,
		logger:    logger,
	}
}

// Chat handles one assistant exchange
func (s *AssistantService) Chat(ctx context.Context, params ChatParams) (*ChatResult, error) {
	ctx, span := observability.StartSpan(ctx, "AssistantService.Chat")
	defer span.End()

	loc := entities.Location{Latitude: params.Latitude, Longitude: params.Longitude}
	if !params.HasLocation {
		loc.Latitude, loc.Longitude = s.cfg.DefaultLocation()
	}
	if err := geo.ValidateLocation(loc); err != nil {
		return nil, err
	}

	cacheKey := s.cacheKey(params.Message, loc)
	if cached := s.lookupCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	intent := s.intents.Resolve(params.Message)
	rendered := s.render(intent, loc)

	s.logger.Debug().
		Str("intent", string(intent.Kind)).
		Str("city", intent.City).
		Msg("resolved assistant intent")

	if intent.Kind == entities.IntentUnknown {
		observability.RecordUnknownIntent(ctx, s.metrics)
	}

	result := &ChatResult{
		Response:     rendered.Display,
		Speech:       rendered.Speech,
		Intent:       intent.Kind,
		TTSAvailable: s.speech != nil && s.speech.Available(),
	}

	s.storeCache(ctx, cacheKey, result)
	return result, nil
}

// Synthesize renders speech audio for arbitrary text
func (s *AssistantService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	ctx, span := observability.StartSpan(ctx, "AssistantService.Synthesize")
	defer span.End()

	return s.speech.Synthesize(ctx, text)
}

// SpeechAvailable reports whether speech synthesis can serve requests
func (s *AssistantService) SpeechAvailable() bool {
	return s.speech != nil && s.speech.Available()
}

func (s *AssistantService) render(intent entities.Intent, loc entities.Location) RenderedResponse {
	limits := s.queries.Limits()

	switch intent.Kind {
	case entities.IntentFindClinics:
		places := s.queries.Nearby(queryservices.NearbyParams{
			Center:   loc,
			RadiusKm: limits.ChatRadiusKm,
			Limit:    limits.ChatLimit,
			Kind:     entities.PlaceKindClinics,
		})
		return s.responses.NearbyClinics(places, limits.ChatRadiusKm)

	case entities.IntentFindClinicsInCity:
		clinics := s.queries.ByCity(intent.City)
		if limits.ChatLimit > 0 && len(clinics) > limits.ChatLimit {
			clinics = clinics[:limits.ChatLimit]
		}
		return s.responses.ClinicsInCity(intent.City, clinics)

	case entities.IntentFindStores:
		places := s.queries.Nearby(queryservices.NearbyParams{
			Center:   loc,
			RadiusKm: limits.ChatRadiusKm,
			Limit:    limits.ChatLimit,
			Kind:     entities.PlaceKindStores,
		})
		return s.responses.NearbyStores(places, limits.ChatRadiusKm)

	case entities.IntentFindEmergency:
		clinics := s.queries.Emergency()
		if limits.ChatLimit > 0 && len(clinics) > limits.ChatLimit {
			clinics = clinics[:limits.ChatLimit]
		}
		return s.responses.EmergencyClinics(clinics)

	case entities.IntentStatistics:
		return s.responses.Statistics(s.queries.Statistics())

	case entities.IntentGreeting:
		return s.responses.Greeting(loc)

	case entities.IntentVoiceHelp:
		return s.responses.VoiceHelp()

	default:
		return s.responses.Unknown()
	}
}

// cacheKey normalizes the utterance and rounds the coordinate to four
// decimals so nearby callers with jittery GPS share entries.
func (s *AssistantService) cacheKey(message string, loc entities.Location) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	return fmt.Sprintf("assistant:chat:%s:%.4f:%.4f", normalized, loc.Latitude, loc.Longitude)
}

func (s *AssistantService) lookupCache(ctx context.Context, key string) *ChatResult {
	if s.cache == nil {
		return nil
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		observability.RecordCacheMiss(ctx, s.metrics, "assistant:chat")
		return nil
	}

	var result ChatResult
	if err := json.Unmarshal(data, &result); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("discarding malformed cache entry")
		return nil
	}

	observability.RecordCacheHit(ctx, s.metrics, "assistant:chat")
	// TTS availability can change between cache writes and reads
	result.TTSAvailable = s.SpeechAvailable()
	return &result
}

func (s *AssistantService) storeCache(ctx context.Context, key string, result *ChatResult) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, key, data, s.cfg.CacheTTLSeconds); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to cache assistant response")
	}
}
