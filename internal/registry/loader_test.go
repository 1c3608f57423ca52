package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const bulkPayload = `[
  {
    "name": {"common": "France", "official": "French Republic"},
    "cca3": "FRA",
    "population": 67391582,
    "area": 551695,
    "capital": ["Paris"],
    "region": "Europe",
    "subregion": "Western Europe",
    "languages": {"fra": "French"},
    "currencies": {"EUR": {"name": "Euro", "symbol": "€"}},
    "flag": "🇫🇷",
    "latlng": [46, 2]
  }
]`

func TestLoad(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(bulkPayload))
	}))
	defer server.Close()

	r := Load(context.Background(), server.Client(), []string{server.URL})
	if r.Len() != 1 {
		t.Fatalf("expected 1 country, got %d", r.Len())
	}

	rec, ok := r.LookupByCode("FRA")
	if !ok {
		t.Fatal("expected FRA to be loaded")
	}
	if rec.OfficialName != "French Republic" {
		t.Errorf("official name = %q", rec.OfficialName)
	}
	if rec.Population != 67391582 {
		t.Errorf("population = %d", rec.Population)
	}
	if len(rec.Capital) != 1 || rec.Capital[0] != "Paris" {
		t.Errorf("capital = %v", rec.Capital)
	}
	if rec.Currencies["EUR"].Symbol != "€" {
		t.Errorf("currency = %v", rec.Currencies)
	}
	if rec.Centroid.Lat != 46 || rec.Centroid.Lon != 2 {
		t.Errorf("centroid = %v", rec.Centroid)
	}
}

func TestLoadFailsClosed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	r := Load(context.Background(), server.Client(), []string{server.URL, server.URL + "/mirror"})
	if r.Len() != 0 {
		t.Fatalf("expected empty registry after total load failure, got %d", r.Len())
	}
}

func TestLoadFallsBackToMirror(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer primary.Close()
	mirror := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(bulkPayload))
	}))
	defer mirror.Close()

	r := Load(context.Background(), nil, []string{primary.URL, mirror.URL})
	if r.Len() != 1 {
		t.Fatalf("expected mirror to serve the list, got %d records", r.Len())
	}
}
