package services

import (
	"strings"

	"github.com/krissstine/petcarewithollama/internal/domain/entities"
)

// Keyword groups consumed by the intent rules. Matching is plain substring
// search over the lowercased utterance.
var (
	clinicKeywords    = []string{"clinic", "vet", "veterinarian", "hospital", "doctor"}
	storeKeywords     = []string{"store", "shop", "buy", "pet shop"}
	emergencyKeywords = []string{"emergency", "urgent", "24/7"}
	statsKeywords     = []string{"how many", "statistics", "total"}
	voiceKeywords     = []string{"voice", "speak", "talk"}
	greetingKeywords  = []string{"hello", "hi", "hey", "kamusta", "good morning", "good afternoon"}
)

// intentRule pairs a predicate with an intent builder. Rules are evaluated
// in declaration order; the first match wins and no later rule runs.
type intentRule struct {
	name  string
	match func(msg string) bool
	build func(msg string) entities.Intent
}

// IntentService classifies a normalized utterance into exactly one intent
// using an ordered rule list. It is pure and stateless: the same utterance
// always resolves to the same intent.
//
// The rule order is deliberate. Statistics phrasing outranks everything,
// so "how many clinics" counts the catalog instead of listing clinics.
// Clinic keywords outrank emergency keywords, so "emergency vet" resolves
// through the clinic rule; both precedences are pinned by tests.
type IntentService struct {
	rules []intentRule
}

// NewIntentService creates the resolver with its fixed rule table
func NewIntentService() *IntentService {
	return &IntentService{
		rules: []intentRule{
			{
				name:  "statistics",
				match: containsAny(statsKeywords),
				build: constant(entities.IntentStatistics),
			},
			{
				name:  "clinics",
				match: containsAny(clinicKeywords),
				build: func(msg string) entities.Intent {
					if city, ok := findCity(msg); ok {
						return entities.Intent{Kind: entities.IntentFindClinicsInCity, City: city}
					}
					return entities.Intent{Kind: entities.IntentFindClinics}
				},
			},
			{
				name:  "stores",
				match: containsAny(storeKeywords),
				build: constant(entities.IntentFindStores),
			},
			{
				name:  "emergency",
				match: containsAny(emergencyKeywords),
				build: constant(entities.IntentFindEmergency),
			},
			{
				name: "city",
				match: func(msg string) bool {
					_, ok := findCity(msg)
					return ok
				},
				build: func(msg string) entities.Intent {
					city, _ := findCity(msg)
					return entities.Intent{Kind: entities.IntentFindClinicsInCity, City: city}
				},
			},
			{
				name:  "voice",
				match: containsAny(voiceKeywords),
				build: constant(entities.IntentVoiceHelp),
			},
			{
				name:  "greeting",
				match: containsAny(greetingKeywords),
				build: constant(entities.IntentGreeting),
			},
		},
	}
}

// Resolve classifies an utterance. It is total: any input, including an
// empty string, yields exactly one intent, falling through to unknown.
func (s *IntentService) Resolve(utterance string) entities.Intent {
	msg := strings.ToLower(strings.TrimSpace(utterance))
	if msg == "" {
		return entities.Intent{Kind: entities.IntentUnknown}
	}

	for _, rule := range s.rules {
		if rule.match(msg) {
			return rule.build(msg)
		}
	}

	return entities.Intent{Kind: entities.IntentUnknown}
}

// findCity returns the canonical query term of the first lexicon city
// mentioned in the message, in lexicon order.
func findCity(msg string) (string, bool) {
	for _, entry := range entities.CityLexicon {
		if strings.Contains(msg, entry.Keyword) {
			return entry.Query, true
		}
	}
	return "", false
}

func containsAny(keywords []string) func(string) bool {
	return func(msg string) bool {
		for _, kw := range keywords {
			if strings.Contains(msg, kw) {
				return true
			}
		}
		return false
	}
}

func constant(kind entities.IntentKind) func(string) entities.Intent {
	return func(string) entities.Intent {
		return entities.Intent{Kind: kind}
	}
}
