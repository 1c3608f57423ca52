package fetch

import (
	"testing"

	"github.com/geolens-io/geolens/internal/core/domain"
)

const indicatorPayload = `[
  {"page": 1, "pages": 1, "per_page": 50, "total": 6},
  [
    {"country": {"id": "FR", "value": "France"}, "countryiso3code": "FRA", "date": "2021", "value": 67749632},
    {"country": {"id": "FR", "value": "France"}, "countryiso3code": "FRA", "date": "2022", "value": 67971311},
    {"country": {"id": "DE", "value": "Germany"}, "countryiso3code": "DEU", "date": "2022", "value": 84079811},
    {"country": {"id": "DE", "value": "Germany"}, "countryiso3code": "DEU", "date": "2021", "value": 83196078},
    {"country": {"id": "IT", "value": "Italy"}, "countryiso3code": "ITA", "date": "2022", "value": null},
    {"country": {"id": "IT", "value": "Italy"}, "countryiso3code": "ITA", "date": "2021", "value": 59109668}
  ]
]`

func TestParseIndicator(t *testing.T) {
	obs, err := ParseIndicator([]byte(indicatorPayload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The null row is dropped, not an error.
	if len(obs) != 5 {
		t.Fatalf("expected 5 observations, got %d", len(obs))
	}
	if obs[0].ISO3 != "FRA" || obs[0].Year != 2021 || obs[0].Country != "France" {
		t.Errorf("unexpected first observation: %+v", obs[0])
	}
}

func TestParseIndicatorSchemaErrors(t *testing.T) {
	cases := map[string]string{
		"not json":          `gibberish`,
		"object not array":  `{"page": 1}`,
		"single page":       `[{"page": 1}]`,
		"bad second page":   `[{"page": 1}, {"not": "an array"}]`,
		"row missing code":  `[{"page":1}, [{"country": {"value": "France"}, "date": "2022", "value": 1}]]`,
	}
	for name, payload := range cases {
		if _, err := ParseIndicator([]byte(payload)); err == nil || !domain.IsSchema(err) {
			t.Errorf("%s: expected schema error, got %v", name, err)
		}
	}
}

func TestRankObservations(t *testing.T) {
	obs, _ := ParseIndicator([]byte(indicatorPayload))
	records := RankObservations(obs, 10)

	if len(records) != 3 {
		t.Fatalf("expected 3 countries, got %d", len(records))
	}
	// Latest year per country, sorted descending.
	want := []domain.ISO3{"DEU", "FRA", "ITA"}
	for i, iso := range want {
		if records[i].ISO3 != iso {
			t.Errorf("rank %d = %s, want %s", i, records[i].ISO3, iso)
		}
	}
	if records[1].Value != 67971311 {
		t.Errorf("France must use the 2022 value, got %v", records[1].Value)
	}

	if got := RankObservations(obs, 2); len(got) != 2 {
		t.Errorf("topN truncation failed, got %d", len(got))
	}
}

func TestSeriesFromObservations(t *testing.T) {
	obs, _ := ParseIndicator([]byte(indicatorPayload))
	series := SeriesFromObservations(obs, []domain.ISO3{"FRA"})

	if len(series) != 1 || series[0].ISO3 != "FRA" {
		t.Fatalf("expected only FRA, got %+v", series)
	}
	points := series[0].Points
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Year != 2021 || points[1].Year != 2022 {
		t.Errorf("points must be ascending by year: %+v", points)
	}
}
