package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/geolens-io/geolens/internal/cache"
	"github.com/geolens-io/geolens/internal/core/domain"
	"github.com/geolens-io/geolens/internal/metrics"
)

// Provider kinds understood by the attempt builder.
const (
	KindWorldBank     = "worldbank"     // two-page indicator API
	KindRestCountries = "restcountries" // bulk country objects
	KindList          = "list"          // pre-ranked [{name, iso3?, value}]
	KindGrowthList    = "growthlist"    // pre-built series
	KindDocument      = "document"      // free-text JSON document
)

// ProviderConfig configures one provider in a category chain.
type ProviderConfig struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	// URL may contain a single %s placeholder, filled with the joined
	// country codes (growth) or the document path (enrichment).
	URL string `yaml:"url"`
}

// Config holds the fetcher settings.
type Config struct {
	// AttemptTimeout bounds a single provider attempt so an unresponsive
	// provider cannot stall its chain.
	AttemptTimeout time.Duration

	// TopN is the ranking truncation length.
	TopN int

	// Categories maps a category name to its ordered provider chain.
	Categories map[string][]ProviderConfig
}

// DefaultTopN is the ranking length when the config leaves it unset.
const DefaultTopN = 10

// Service runs the per-category provider chains behind the shared TTL
// cache. Chains for different categories are fully independent; the cache
// is the only shared state.
type Service struct {
	source *Source
	cache  *cache.Cache
	cfg    Config
}

// NewService builds a fetch service. The cache instance is constructed by
// the caller and shared across categories.
func NewService(cfg Config, c *cache.Cache) *Service {
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 10 * time.Second
	}
	if cfg.TopN <= 0 {
		cfg.TopN = DefaultTopN
	}
	return &Service{
		source: NewSource(cfg.AttemptTimeout),
		cache:  c,
		cfg:    cfg,
	}
}

// TopN returns the configured ranking truncation length.
func (s *Service) TopN() int { return s.cfg.TopN }

// Ranking fetches a per-country ranking (population, gdp), cache-first.
// It never fails: the worst outcome is the bundled fallback.
func (s *Service) Ranking(ctx context.Context, category domain.Category, topN int) []domain.RankingRecord {
	if topN <= 0 {
		topN = s.cfg.TopN
	}
	key := cache.Key(category, strconv.Itoa(topN))
	if cached, ok := cacheGet[[]domain.RankingRecord](s.cache, key); ok {
		metrics.CacheHitsTotal.WithLabelValues(string(category)).Inc()
		return cached
	}
	metrics.CacheMissesTotal.WithLabelValues(string(category)).Inc()

	records, _, _ := RunChain(ctx, category, s.rankingAttempts(category, topN), s.cfg.AttemptTimeout,
		func() []domain.RankingRecord { return FallbackRanking(category, topN) })
	s.cache.Set(key, records)
	return records
}

// Distribution fetches a name/value ranking (languages, religion),
// cache-first, falling back to the bundled dataset.
func (s *Service) Distribution(ctx context.Context, category domain.Category, topN int) []domain.DistributionEntry {
	if topN <= 0 {
		topN = s.cfg.TopN
	}
	key := cache.Key(category, strconv.Itoa(topN))
	if cached, ok := cacheGet[[]domain.DistributionEntry](s.cache, key); ok {
		metrics.CacheHitsTotal.WithLabelValues(string(category)).Inc()
		return cached
	}
	metrics.CacheMissesTotal.WithLabelValues(string(category)).Inc()

	entries, _, _ := RunChain(ctx, category, s.distributionAttempts(category, topN), s.cfg.AttemptTimeout,
		func() []domain.DistributionEntry { return FallbackDistribution(category, topN) })
	s.cache.Set(key, entries)
	return entries
}

// GrowthSeries fetches yearly series for the given codes, cache-first.
func (s *Service) GrowthSeries(ctx context.Context, codes []domain.ISO3) []domain.GrowthSeries {
	joined := joinCodes(codes)
	key := cache.Key(domain.CategoryGrowth, joined)
	if cached, ok := cacheGet[[]domain.GrowthSeries](s.cache, key); ok {
		metrics.CacheHitsTotal.WithLabelValues(string(domain.CategoryGrowth)).Inc()
		return cached
	}
	metrics.CacheMissesTotal.WithLabelValues(string(domain.CategoryGrowth)).Inc()

	series, _, _ := RunChain(ctx, domain.CategoryGrowth, s.growthAttempts(codes), s.cfg.AttemptTimeout,
		func() []domain.GrowthSeries { return FallbackGrowth(codes) })
	s.cache.Set(key, series)
	return series
}

// Document fetches a free-text JSON document by source path, cache-first.
// When every provider fails the result is nil, which callers treat as
// "no extra facts", never as an error.
func (s *Service) Document(ctx context.Context, path string) []byte {
	key := cache.Key(domain.CategoryEnrichment, path)
	if cached, ok := cacheGet[[]byte](s.cache, key); ok {
		metrics.CacheHitsTotal.WithLabelValues(string(domain.CategoryEnrichment)).Inc()
		return cached
	}
	metrics.CacheMissesTotal.WithLabelValues(string(domain.CategoryEnrichment)).Inc()

	var attempts []Attempt[[]byte]
	for _, p := range s.providers(domain.CategoryEnrichment) {
		url := fillURL(p.URL, path)
		attempts = append(attempts, Attempt[[]byte]{Provider: p.Name, Run: func(ctx context.Context) ([]byte, error) {
			body, err := s.source.Get(ctx, url)
			if err != nil {
				return nil, err
			}
			if !json.Valid(body) {
				return nil, domain.SchemaErrorf("document is not valid JSON")
			}
			return body, nil
		}})
	}

	doc, _, _ := RunChain(ctx, domain.CategoryEnrichment, attempts, s.cfg.AttemptTimeout,
		func() []byte { return nil })
	s.cache.Set(key, doc)
	return doc
}

func (s *Service) providers(category domain.Category) []ProviderConfig {
	return s.cfg.Categories[string(category)]
}

func (s *Service) rankingAttempts(category domain.Category, topN int) []Attempt[[]domain.RankingRecord] {
	var attempts []Attempt[[]domain.RankingRecord]
	for _, p := range s.providers(category) {
		p := p
		attempts = append(attempts, Attempt[[]domain.RankingRecord]{Provider: p.Name, Run: func(ctx context.Context) ([]domain.RankingRecord, error) {
			body, err := s.source.Get(ctx, p.URL)
			if err != nil {
				return nil, err
			}
			var records []domain.RankingRecord
			switch p.Kind {
			case KindWorldBank:
				obs, err := ParseIndicator(body)
				if err != nil {
					return nil, err
				}
				records = RankObservations(obs, topN)
			case KindRestCountries:
				records, err = RankBulkByPopulation(body, topN)
				if err != nil {
					return nil, err
				}
			case KindList:
				records, err = ParseRankingList(body, topN)
				if err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("provider %s: unknown kind %q", p.Name, p.Kind)
			}
			if len(records) == 0 {
				return nil, domain.SchemaErrorf("provider %s returned an empty ranking", p.Name)
			}
			return records, nil
		}})
	}
	return attempts
}

func (s *Service) distributionAttempts(category domain.Category, topN int) []Attempt[[]domain.DistributionEntry] {
	var attempts []Attempt[[]domain.DistributionEntry]
	for _, p := range s.providers(category) {
		p := p
		attempts = append(attempts, Attempt[[]domain.DistributionEntry]{Provider: p.Name, Run: func(ctx context.Context) ([]domain.DistributionEntry, error) {
			body, err := s.source.Get(ctx, p.URL)
			if err != nil {
				return nil, err
			}
			entries, err := ParseDistribution(body, topN)
			if err != nil {
				return nil, err
			}
			if len(entries) == 0 {
				return nil, domain.SchemaErrorf("provider %s returned an empty list", p.Name)
			}
			return entries, nil
		}})
	}
	return attempts
}

func (s *Service) growthAttempts(codes []domain.ISO3) []Attempt[[]domain.GrowthSeries] {
	joined := joinCodes(codes)
	var attempts []Attempt[[]domain.GrowthSeries]
	for _, p := range s.providers(domain.CategoryGrowth) {
		p := p
		url := fillURL(p.URL, joined)
		attempts = append(attempts, Attempt[[]domain.GrowthSeries]{Provider: p.Name, Run: func(ctx context.Context) ([]domain.GrowthSeries, error) {
			body, err := s.source.Get(ctx, url)
			if err != nil {
				return nil, err
			}
			var series []domain.GrowthSeries
			switch p.Kind {
			case KindWorldBank:
				obs, err := ParseIndicator(body)
				if err != nil {
					return nil, err
				}
				series = SeriesFromObservations(obs, codes)
			case KindGrowthList:
				all, err := ParseGrowthList(body)
				if err != nil {
					return nil, err
				}
				series = filterSeries(all, codes)
			default:
				return nil, fmt.Errorf("provider %s: unknown kind %q", p.Name, p.Kind)
			}
			if len(series) == 0 {
				return nil, domain.SchemaErrorf("provider %s returned no series", p.Name)
			}
			return series, nil
		}})
	}
	return attempts
}

func filterSeries(all []domain.GrowthSeries, codes []domain.ISO3) []domain.GrowthSeries {
	if len(codes) == 0 {
		return all
	}
	wanted := make(map[domain.ISO3]bool, len(codes))
	for _, c := range codes {
		wanted[c] = true
	}
	var out []domain.GrowthSeries
	for _, s := range all {
		if wanted[s.ISO3] {
			out = append(out, s)
		}
	}
	return out
}

// joinCodes produces the canonical argument signature for a code set:
// uppercased, sorted, semicolon-joined.
func joinCodes(codes []domain.ISO3) string {
	ss := make([]string, 0, len(codes))
	for _, c := range codes {
		ss = append(ss, strings.ToUpper(string(c)))
	}
	sort.Strings(ss)
	return strings.Join(ss, ";")
}

func fillURL(tmpl, arg string) string {
	if strings.Contains(tmpl, "%s") {
		return fmt.Sprintf(tmpl, arg)
	}
	return tmpl
}

// cacheGet retrieves and type-asserts a cached payload.
func cacheGet[T any](c *cache.Cache, key string) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
