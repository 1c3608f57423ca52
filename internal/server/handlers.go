package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/geolens-io/geolens/internal/core/domain"
	"github.com/geolens-io/geolens/internal/resolve"
)

// handleResolve matches a boundary feature's property bag to a country.
// NotFound is a normal outcome, reported as 404 with a JSON body.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Properties map[string]any `json:"properties"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, ok := resolve.Resolve(domain.BoundaryFeature{Properties: body.Properties}, s.ctrl.Registry)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]bool{"not_found": true})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(chi.URLParam(r, "category"))
	topN := queryInt(r, "top", 0)

	switch category {
	case domain.CategoryPopulation, domain.CategoryGDP:
		writeJSON(w, http.StatusOK, s.ctrl.Fetch.Ranking(r.Context(), category, topN))
	case domain.CategoryLanguages, domain.CategoryReligion:
		writeJSON(w, http.StatusOK, s.ctrl.Fetch.Distribution(r.Context(), category, topN))
	default:
		writeError(w, http.StatusNotFound, "unknown ranking category")
	}
}

func (s *Server) handleGrowth(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("codes"))
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing codes parameter")
		return
	}
	var codes []domain.ISO3
	for _, c := range strings.Split(raw, ",") {
		code := domain.ISO3(strings.ToUpper(strings.TrimSpace(c)))
		if !code.Valid() {
			writeError(w, http.StatusBadRequest, "invalid country code "+string(code))
			return
		}
		codes = append(codes, code)
	}
	writeJSON(w, http.StatusOK, s.ctrl.Fetch.GrowthSeries(r.Context(), codes))
}

// handleEnrichment serves best-effort facts; an empty object is a valid
// response, never an error.
func (s *Server) handleEnrichment(w http.ResponseWriter, r *http.Request) {
	iso3 := domain.ISO3(strings.ToUpper(chi.URLParam(r, "iso3")))
	if !iso3.Valid() {
		writeError(w, http.StatusBadRequest, "invalid country code")
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		if rec, ok := s.ctrl.Registry.LookupByCode(string(iso3)); ok {
			name = rec.CommonName
		}
	}
	writeJSON(w, http.StatusOK, s.ctrl.Assembler.Enrich(r.Context(), iso3, name))
}

func (s *Server) handleCountry(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.ctrl.Registry.LookupByCode(chi.URLParam(r, "iso3"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown country code")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	var codes []domain.ISO3
	if raw := strings.TrimSpace(r.URL.Query().Get("codes")); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			code := domain.ISO3(strings.ToUpper(strings.TrimSpace(c)))
			if code.Valid() {
				codes = append(codes, code)
			}
		}
	}
	writeJSON(w, http.StatusOK, s.ctrl.Overview(r.Context(), codes))
}

// handleHealth reports degraded (but still 200) when the registry failed
// to load; nothing in the core is fatal.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if s.ctrl.Registry.Len() == 0 {
		status = "degraded"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    status,
		"countries": s.ctrl.Registry.Len(),
		"cached":    s.ctrl.Cache.Len(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("server: encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
