package domain

// Category identifies one statistical data category served by the fetcher.
type Category string

const (
	CategoryPopulation Category = "population"
	CategoryGDP        Category = "gdp"
	CategoryLanguages  Category = "languages"
	CategoryReligion   Category = "religion"
	CategoryGrowth     Category = "growth"
	CategoryEnrichment Category = "enrichment"
)

// RankingRecord is one row of a global top-N ranking. Rankings are always
// sorted descending by Value and truncated to the configured top-N.
type RankingRecord struct {
	Country string  `json:"country"`
	ISO3    ISO3    `json:"iso3"`
	Value   float64 `json:"value"`
}

// DistributionEntry is one row of a non-country ranking (language speakers,
// religion shares). Sorted descending by Value like country rankings.
type DistributionEntry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// GrowthPoint is one yearly observation in a growth series.
type GrowthPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// GrowthSeries holds per-country yearly observations, sorted ascending by
// year. Years with no observation are simply absent; no interpolation.
type GrowthSeries struct {
	Country string        `json:"country"`
	ISO3    ISO3          `json:"iso3"`
	Points  []GrowthPoint `json:"points"`
}

// EnrichmentFields are best-effort supplementary facts extracted from
// free-text documents. Every field is optional; an empty value means the
// fact could not be derived, which is a normal outcome.
type EnrichmentFields struct {
	Religion         string `json:"religion,omitempty"`
	HeadOfState      string `json:"head_of_state,omitempty"`
	IndependenceDate string `json:"independence_date,omitempty"`
}

// Empty reports whether no field was derived.
func (e EnrichmentFields) Empty() bool {
	return e.Religion == "" && e.HeadOfState == "" && e.IndependenceDate == ""
}
