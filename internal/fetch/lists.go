package fetch

import (
	"encoding/json"
	"sort"

	"github.com/geolens-io/geolens/internal/core/domain"
	"github.com/geolens-io/geolens/internal/registry"
)

// listRow is the generic pre-ranked list shape served by mirror providers
// and by the bundled fallback files: [{"name", "iso3"?, "value"}].
type listRow struct {
	Name  string   `json:"name"`
	ISO3  string   `json:"iso3"`
	Value *float64 `json:"value"`
}

func parseListRows(payload []byte) ([]listRow, error) {
	var rows []listRow
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, domain.SchemaErrorf("ranking list is not an array: %v", err)
	}
	for _, r := range rows {
		if r.Name == "" || r.Value == nil {
			return nil, domain.SchemaErrorf("ranking list row missing required fields")
		}
	}
	return rows, nil
}

// ParseRankingList decodes a pre-ranked per-country list. Every row must
// carry a country code.
func ParseRankingList(payload []byte, topN int) ([]domain.RankingRecord, error) {
	rows, err := parseListRows(payload)
	if err != nil {
		return nil, err
	}
	records := make([]domain.RankingRecord, 0, len(rows))
	for _, r := range rows {
		if r.ISO3 == "" {
			return nil, domain.SchemaErrorf("ranking list row missing country code")
		}
		records = append(records, domain.RankingRecord{Country: r.Name, ISO3: domain.ISO3(r.ISO3), Value: *r.Value})
	}
	sortRanking(records)
	if topN > 0 && len(records) > topN {
		records = records[:topN]
	}
	return records, nil
}

// ParseDistribution decodes a name/value list (language speakers, religion
// shares) sorted descending by value.
func ParseDistribution(payload []byte, topN int) ([]domain.DistributionEntry, error) {
	rows, err := parseListRows(payload)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.DistributionEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, domain.DistributionEntry{Name: r.Name, Value: *r.Value})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Name < entries[j].Name
	})
	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries, nil
}

// RankBulkByPopulation builds a population ranking straight from a bulk
// country list payload, for providers that serve full country objects.
func RankBulkByPopulation(payload []byte, topN int) ([]domain.RankingRecord, error) {
	countries, err := registry.ParseBulk(payload)
	if err != nil {
		return nil, err
	}
	records := make([]domain.RankingRecord, 0, len(countries))
	for _, c := range countries {
		if !c.ISO3.Valid() {
			continue
		}
		records = append(records, domain.RankingRecord{Country: c.CommonName, ISO3: c.ISO3, Value: float64(c.Population)})
	}
	sortRanking(records)
	if topN > 0 && len(records) > topN {
		records = records[:topN]
	}
	return records, nil
}

// ParseGrowthList decodes pre-built growth series:
// [{"name", "iso3", "points": [{"year", "value"}]}]. Points are re-sorted
// ascending by year so the shape guarantee does not depend on the provider.
func ParseGrowthList(payload []byte) ([]domain.GrowthSeries, error) {
	var raw []struct {
		Name   string               `json:"name"`
		ISO3   string               `json:"iso3"`
		Points []domain.GrowthPoint `json:"points"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, domain.SchemaErrorf("growth list is not an array: %v", err)
	}
	out := make([]domain.GrowthSeries, 0, len(raw))
	for _, s := range raw {
		if s.Name == "" || s.ISO3 == "" || len(s.Points) == 0 {
			return nil, domain.SchemaErrorf("growth list row missing required fields")
		}
		points := append([]domain.GrowthPoint(nil), s.Points...)
		sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
		out = append(out, domain.GrowthSeries{Country: s.Name, ISO3: domain.ISO3(s.ISO3), Points: points})
	}
	return out, nil
}

func sortRanking(records []domain.RankingRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Value != records[j].Value {
			return records[i].Value > records[j].Value
		}
		return records[i].ISO3 < records[j].ISO3
	})
}
