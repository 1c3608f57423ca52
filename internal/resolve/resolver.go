// Package resolve matches an arbitrary boundary feature to a canonical
// country record via tiered lookups: code, exact name, then substring
// containment. Resolution is a pure function of (feature, registry).
package resolve

import (
	"strings"

	"github.com/geolens-io/geolens/internal/core/domain"
	"github.com/geolens-io/geolens/internal/metrics"
	"github.com/geolens-io/geolens/internal/registry"
)

// Property keys tried, in fixed priority order, when collecting candidate
// identifiers from a feature. Geometry datasets disagree on naming, so
// several aliases are probed for each concept.
var (
	codeKeys = []string{"ISO_A3", "ADM0_A3", "iso_a3", "adm0_a3", "ISO3166-1-Alpha-3", "codeProp", "id"}
	nameKeys = []string{"ADMIN", "NAME", "NAME_LONG", "admin", "name", "name_long", "nameProp"}
)

// Candidate ranks for the tie-break: a common-name exact match beats an
// official-name exact match beats a containment match.
const (
	rankCommonExact = iota
	rankOfficialExact
	rankContainment
)

type candidate struct {
	record  *domain.CountryRecord
	rank    int
	ordinal int // registry load order
}

// Resolve matches a boundary feature against the registry. Tiers are
// evaluated in strict order and the first tier producing any candidate
// decides the outcome; ambiguity within a tier is settled by rank, then by
// registry load order. No match is (nil, false), never an error and never
// a guess.
func Resolve(f domain.BoundaryFeature, reg *registry.Registry) (*domain.CountryRecord, bool) {
	if rec := resolveByCode(f, reg); rec != nil {
		metrics.ResolutionsTotal.WithLabelValues("code").Inc()
		return rec, true
	}
	if rec, tier := resolveByName(f, reg); rec != nil {
		metrics.ResolutionsTotal.WithLabelValues(tier).Inc()
		return rec, true
	}
	metrics.ResolutionsTotal.WithLabelValues("not_found").Inc()
	return nil, false
}

func resolveByCode(f domain.BoundaryFeature, reg *registry.Registry) *domain.CountryRecord {
	best := candidate{ordinal: -1}
	for _, key := range codeKeys {
		raw, ok := f.Property(key)
		if !ok {
			continue
		}
		code := strings.ToUpper(strings.TrimSpace(raw))
		// Datasets mark unassigned areas with junk codes like "-99".
		if !domain.ISO3(code).Valid() {
			continue
		}
		rec, ok := reg.LookupByCode(code)
		if !ok {
			continue
		}
		if ord := reg.Ordinal(rec.ISO3); best.record == nil || ord < best.ordinal {
			best = candidate{record: rec, ordinal: ord}
		}
	}
	return best.record
}

func resolveByName(f domain.BoundaryFeature, reg *registry.Registry) (*domain.CountryRecord, string) {
	names := featureNames(f)
	if len(names) == 0 {
		return nil, ""
	}

	// Exact-name tier.
	if rec, rank := exactNameMatch(names, reg); rec != nil {
		if rank == rankCommonExact {
			return rec, "common_name"
		}
		return rec, "official_name"
	}

	// Containment tier, both directions.
	if rec := containmentMatch(names, reg); rec != nil {
		return rec, "containment"
	}
	return nil, ""
}

// featureNames collects normalized name-like properties in key priority
// order, deduplicated.
func featureNames(f domain.BoundaryFeature) []string {
	var names []string
	seen := make(map[string]bool)
	for _, key := range nameKeys {
		raw, ok := f.Property(key)
		if !ok {
			continue
		}
		n := registry.Normalize(raw)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	return names
}

func exactNameMatch(names []string, reg *registry.Registry) (*domain.CountryRecord, int) {
	best := candidate{record: nil}
	consider := func(rec *domain.CountryRecord, rank int) {
		c := candidate{record: rec, rank: rank, ordinal: reg.Ordinal(rec.ISO3)}
		if best.record == nil || c.rank < best.rank || (c.rank == best.rank && c.ordinal < best.ordinal) {
			best = c
		}
	}
	for _, n := range names {
		for _, rec := range reg.LookupByCommonName(n) {
			consider(rec, rankCommonExact)
		}
		for _, rec := range reg.LookupByOfficialName(n) {
			consider(rec, rankOfficialExact)
		}
	}
	return best.record, best.rank
}

func containmentMatch(names []string, reg *registry.Registry) *domain.CountryRecord {
	records := reg.Records()
	for i := range records {
		common, official := reg.NormalizedNames(i)
		for _, n := range names {
			if contains(n, common) || contains(n, official) {
				return &records[i]
			}
		}
	}
	return nil
}

// contains tests substring containment in both directions.
func contains(featureName, registryName string) bool {
	if featureName == "" || registryName == "" {
		return false
	}
	return strings.Contains(featureName, registryName) || strings.Contains(registryName, featureName)
}
