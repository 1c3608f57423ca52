package enrich

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/geolens-io/geolens/internal/core/domain"
)

// DocumentFetcher retrieves a free-text JSON document by source path.
// A nil result means the document is unavailable, which is not an error.
type DocumentFetcher interface {
	Document(ctx context.Context, path string) []byte
}

// Assembler merges a resolved country with best-effort facts extracted
// from its source document.
type Assembler struct {
	fetcher DocumentFetcher
}

// NewAssembler builds an assembler on top of a document fetcher.
func NewAssembler(fetcher DocumentFetcher) *Assembler {
	return &Assembler{fetcher: fetcher}
}

// Enrich returns the derivable enrichment fields for a country. Every
// missing piece, from an unmapped country to an absent document section,
// yields empty fields rather than an error.
func (a *Assembler) Enrich(ctx context.Context, iso3 domain.ISO3, commonName string) domain.EnrichmentFields {
	path, ok := DocPath(iso3, commonName)
	if !ok {
		slog.Debug("enrich: no document mapping", "iso3", iso3, "name", commonName)
		return domain.EnrichmentFields{}
	}

	payload := a.fetcher.Document(ctx, path)
	if payload == nil {
		return domain.EnrichmentFields{}
	}

	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil {
		slog.Warn("enrich: document is not a JSON object", "path", path, "error", err)
		return domain.EnrichmentFields{}
	}

	fields := domain.EnrichmentFields{}
	if t := textAt(doc, "People and Society", "Religions"); t != "" {
		fields.Religion = Religion(t)
	}
	if t := textAt(doc, "Government", "Executive branch", "chief of state"); t != "" {
		fields.HeadOfState = HeadOfState(t)
	}
	if t := textAt(doc, "Government", "Independence"); t != "" {
		fields.IndependenceDate = IndependenceDate(t)
	}
	return fields
}

// textAt walks nested objects along keys and unwraps the terminal value,
// which the source serves either as a plain string or as {"text": "..."}.
func textAt(doc map[string]any, keys ...string) string {
	var cur any = doc
	for _, k := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur, ok = m[k]
		if !ok {
			return ""
		}
	}
	switch v := cur.(type) {
	case string:
		return v
	case map[string]any:
		if s, ok := v["text"].(string); ok {
			return s
		}
	}
	return ""
}
