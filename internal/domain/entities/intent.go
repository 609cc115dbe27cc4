package entities

// IntentKind is the closed set of purposes an utterance can resolve to.
type IntentKind string

const (
	IntentFindClinics       IntentKind = "find_clinics"
	IntentFindClinicsInCity IntentKind = "find_clinics_in_city"
	IntentFindStores        IntentKind = "find_stores"
	IntentFindEmergency     IntentKind = "find_emergency"
	IntentStatistics        IntentKind = "statistics"
	IntentGreeting          IntentKind = "greeting"
	IntentVoiceHelp         IntentKind = "voice_help"
	IntentUnknown           IntentKind = "unknown"
)

// Intent is the resolved purpose of a user utterance. City is set only for
// IntentFindClinicsInCity and holds the canonical lexicon query term.
type Intent struct {
	Kind IntentKind `json:"kind"`
	City string     `json:"city,omitempty"`
}
