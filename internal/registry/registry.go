package registry

import (
	"log/slog"
	"strings"

	"github.com/geolens-io/geolens/internal/core/domain"
)

// Registry holds the canonical country list with normalized lookup indices.
// It is built once and read-only afterwards; records keep load order so that
// name lookups are deterministic regardless of call order.
type Registry struct {
	records      []domain.CountryRecord
	normCommon   []string
	normOfficial []string
	byCode       map[domain.ISO3]int
	byCommon     map[string][]int
	byOfficial   map[string][]int
}

// New builds a registry from a bulk country list. Records with a missing or
// ill-formed ISO3 code are skipped; duplicate codes keep the first record.
func New(records []domain.CountryRecord) *Registry {
	r := &Registry{
		byCode:     make(map[domain.ISO3]int, len(records)),
		byCommon:   make(map[string][]int, len(records)),
		byOfficial: make(map[string][]int, len(records)),
	}
	for _, rec := range records {
		if !rec.ISO3.Valid() {
			slog.Debug("registry: skipping record with invalid code", "code", rec.ISO3, "name", rec.CommonName)
			continue
		}
		if _, dup := r.byCode[rec.ISO3]; dup {
			slog.Warn("registry: duplicate country code", "code", rec.ISO3)
			continue
		}
		idx := len(r.records)
		r.records = append(r.records, rec)
		r.byCode[rec.ISO3] = idx
		common := Normalize(rec.CommonName)
		official := Normalize(rec.OfficialName)
		r.normCommon = append(r.normCommon, common)
		r.normOfficial = append(r.normOfficial, official)
		if common != "" {
			r.byCommon[common] = append(r.byCommon[common], idx)
		}
		if official != "" {
			r.byOfficial[official] = append(r.byOfficial[official], idx)
		}
	}
	return r
}

// Empty is the fail-closed registry: every lookup misses. Callers must treat
// it as a degraded but non-fatal state.
func Empty() *Registry { return New(nil) }

// Len returns the number of loaded records.
func (r *Registry) Len() int { return len(r.records) }

// Records returns all records in load order. The slice is shared; callers
// must not mutate it.
func (r *Registry) Records() []domain.CountryRecord { return r.records }

// LookupByCode returns the record for an ISO3 code, case-insensitively.
func (r *Registry) LookupByCode(code string) (*domain.CountryRecord, bool) {
	idx, ok := r.byCode[domain.ISO3(strings.ToUpper(strings.TrimSpace(code)))]
	if !ok {
		return nil, false
	}
	return &r.records[idx], true
}

// LookupByCommonName returns records whose normalized common name equals the
// already-normalized key, in load order.
func (r *Registry) LookupByCommonName(normalized string) []*domain.CountryRecord {
	return r.collect(r.byCommon[normalized])
}

// LookupByOfficialName returns records whose normalized official name equals
// the already-normalized key, in load order.
func (r *Registry) LookupByOfficialName(normalized string) []*domain.CountryRecord {
	return r.collect(r.byOfficial[normalized])
}

// LookupByName searches both name indices for a raw (unnormalized) name.
// Disambiguation between multiple candidates is the resolver's job.
func (r *Registry) LookupByName(name string) []*domain.CountryRecord {
	key := Normalize(name)
	if key == "" {
		return nil
	}
	seen := make(map[domain.ISO3]bool)
	var out []*domain.CountryRecord
	for _, rec := range append(r.LookupByCommonName(key), r.LookupByOfficialName(key)...) {
		if !seen[rec.ISO3] {
			seen[rec.ISO3] = true
			out = append(out, rec)
		}
	}
	return out
}

// Ordinal returns a record's load-order position, or -1 for unknown codes.
// Load order is what makes tie-breaking deterministic.
func (r *Registry) Ordinal(code domain.ISO3) int {
	if idx, ok := r.byCode[code]; ok {
		return idx
	}
	return -1
}

// NormalizedNames returns the pre-normalized common and official names of
// the record at a load-order position.
func (r *Registry) NormalizedNames(i int) (common, official string) {
	return r.normCommon[i], r.normOfficial[i]
}

func (r *Registry) collect(idxs []int) []*domain.CountryRecord {
	if len(idxs) == 0 {
		return nil
	}
	out := make([]*domain.CountryRecord, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, &r.records[i])
	}
	return out
}
