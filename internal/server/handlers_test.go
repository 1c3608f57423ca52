package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geolens-io/geolens/internal/cache"
	"github.com/geolens-io/geolens/internal/control"
	"github.com/geolens-io/geolens/internal/core/domain"
	"github.com/geolens-io/geolens/internal/enrich"
	"github.com/geolens-io/geolens/internal/fetch"
	"github.com/geolens-io/geolens/internal/registry"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	reg := registry.New([]domain.CountryRecord{
		{ISO3: "FRA", CommonName: "France", OfficialName: "French Republic", Population: 67971311, Region: "Europe"},
		{ISO3: "DEU", CommonName: "Germany", OfficialName: "Federal Republic of Germany", Population: 84079811, Region: "Europe"},
	})
	c := cache.New(time.Minute)
	// No live providers configured: every category serves its fallback.
	svc := fetch.NewService(fetch.Config{AttemptTimeout: time.Second, TopN: 10}, c)
	asm := enrich.NewAssembler(svc)
	ctrl := &control.Controller{
		Registry:  reg,
		Cache:     c,
		Fetch:     svc,
		Assembler: asm,
		Session:   control.NewSession(reg, asm),
	}
	return New(ctrl, 0)
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleResolve(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodPost, "/v1/resolve", `{"properties": {"ISO_A3": "fra"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.CountryRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, domain.ISO3("FRA"), got.ISO3)

	rec = doRequest(t, s, http.MethodPost, "/v1/resolve", `{"properties": {"NAME": "Lilliput"}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/v1/resolve", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRanking(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/v1/rankings/population?top=5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var records []domain.RankingRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.Len(t, records, 5)
	for i := 1; i < len(records); i++ {
		assert.LessOrEqual(t, records[i].Value, records[i-1].Value, "ranking must be sorted descending")
	}

	rec = doRequest(t, s, http.MethodGet, "/v1/rankings/languages", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/v1/rankings/volcanoes", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGrowth(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/v1/growth?codes=FRA,DEU", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var series []domain.GrowthSeries
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &series))
	require.NotEmpty(t, series)
	for _, gs := range series {
		for i := 1; i < len(gs.Points); i++ {
			assert.Greater(t, gs.Points[i].Year, gs.Points[i-1].Year)
		}
	}

	rec = doRequest(t, s, http.MethodGet, "/v1/growth", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/v1/growth?codes=bogus!", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleEnrichment(t *testing.T) {
	s := testServer(t)

	// Document chain has no providers: empty-but-valid fields.
	rec := doRequest(t, s, http.MethodGet, "/v1/enrichment/FRA?name=France", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fields domain.EnrichmentFields
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	assert.True(t, fields.Empty())

	rec = doRequest(t, s, http.MethodGet, "/v1/enrichment/notacode", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCountry(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/v1/countries/deu", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.CountryRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Germany", got.CommonName)

	rec = doRequest(t, s, http.MethodGet, "/v1/countries/XXX", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}
