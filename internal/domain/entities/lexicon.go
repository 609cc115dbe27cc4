package entities

// CityEntry maps an utterance keyword to the canonical term used when
// querying the catalog by city. Most entries map to themselves; "cdo" is a
// colloquial alias for Cagayan de Oro.
type CityEntry struct {
	Keyword string
	Query   string
}

// CityLexicon is the ordered, fixed set of recognized city names. Order
// matters: when an utterance mentions several cities, the first lexicon
// match wins. Consumed by both the intent resolver and the query layer so
// "city recognized" has a single source of truth.
var CityLexicon = []CityEntry{
	{Keyword: "manila", Query: "manila"},
	{Keyword: "makati", Query: "makati"},
	{Keyword: "quezon", Query: "quezon"},
	{Keyword: "pasig", Query: "pasig"},
	{Keyword: "cebu", Query: "cebu"},
	{Keyword: "davao", Query: "davao"},
	{Keyword: "cdo", Query: "cagayan de oro"},
	{Keyword: "baguio", Query: "baguio"},
	{Keyword: "laguna", Query: "laguna"},
	{Keyword: "cavite", Query: "cavite"},
}

// Regions enumerates the catalog's region values. Statistics count clinics
// per region by exact equality against this set.
var Regions = []string{
	"Metro Manila",
	"Luzon",
	"Visayas",
	"Mindanao",
}
