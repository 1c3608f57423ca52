package fetch

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/geolens-io/geolens/internal/core/domain"
)

// Observation is one per-country, per-year numeric value from a statistical
// indicator API.
type Observation struct {
	Country string
	ISO3    domain.ISO3
	Year    int
	Value   float64
}

// wbRow mirrors one element of the World Bank v2 observation page.
type wbRow struct {
	Country *struct {
		Value string `json:"value"`
	} `json:"country"`
	ISO3  string  `json:"countryiso3code"`
	Date  string  `json:"date"`
	Value *float64 `json:"value"`
}

// ParseIndicator decodes a World Bank v2 indicator payload: a two-element
// array of [metadata, observations]. Rows with a null value are dropped;
// rows missing the country code or date are a schema error.
func ParseIndicator(payload []byte) ([]Observation, error) {
	var pages []json.RawMessage
	if err := json.Unmarshal(payload, &pages); err != nil {
		return nil, domain.SchemaErrorf("indicator payload is not an array: %v", err)
	}
	if len(pages) < 2 {
		return nil, domain.SchemaErrorf("indicator payload has %d pages, want 2", len(pages))
	}

	var rows []wbRow
	if err := json.Unmarshal(pages[1], &rows); err != nil {
		return nil, domain.SchemaErrorf("observation page is not an array: %v", err)
	}

	out := make([]Observation, 0, len(rows))
	for _, r := range rows {
		if r.Value == nil {
			continue
		}
		if r.ISO3 == "" || r.Date == "" || r.Country == nil {
			return nil, domain.SchemaErrorf("observation row missing required fields")
		}
		year, err := strconv.Atoi(r.Date)
		if err != nil {
			// Some indicators report quarters; only yearly rows are kept.
			continue
		}
		out = append(out, Observation{
			Country: r.Country.Value,
			ISO3:    domain.ISO3(r.ISO3),
			Year:    year,
			Value:   *r.Value,
		})
	}
	return out, nil
}

// RankObservations keeps the latest observation per country and returns the
// top-N sorted descending by value. Ties keep ISO3 order for determinism.
func RankObservations(obs []Observation, topN int) []domain.RankingRecord {
	latest := make(map[domain.ISO3]Observation)
	for _, o := range obs {
		if prev, ok := latest[o.ISO3]; !ok || o.Year > prev.Year {
			latest[o.ISO3] = o
		}
	}

	records := make([]domain.RankingRecord, 0, len(latest))
	for _, o := range latest {
		records = append(records, domain.RankingRecord{Country: o.Country, ISO3: o.ISO3, Value: o.Value})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Value != records[j].Value {
			return records[i].Value > records[j].Value
		}
		return records[i].ISO3 < records[j].ISO3
	})
	if topN > 0 && len(records) > topN {
		records = records[:topN]
	}
	return records
}

// SeriesFromObservations groups observations per country, keeping only the
// requested codes, with points sorted ascending by year. Missing years are
// simply absent.
func SeriesFromObservations(obs []Observation, codes []domain.ISO3) []domain.GrowthSeries {
	wanted := make(map[domain.ISO3]bool, len(codes))
	for _, c := range codes {
		wanted[c] = true
	}

	byCode := make(map[domain.ISO3]*domain.GrowthSeries)
	for _, o := range obs {
		if len(wanted) > 0 && !wanted[o.ISO3] {
			continue
		}
		s, ok := byCode[o.ISO3]
		if !ok {
			s = &domain.GrowthSeries{Country: o.Country, ISO3: o.ISO3}
			byCode[o.ISO3] = s
		}
		s.Points = append(s.Points, domain.GrowthPoint{Year: o.Year, Value: o.Value})
	}

	out := make([]domain.GrowthSeries, 0, len(byCode))
	for _, s := range byCode {
		sort.Slice(s.Points, func(i, j int) bool { return s.Points[i].Year < s.Points[j].Year })
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ISO3 < out[j].ISO3 })
	return out
}
