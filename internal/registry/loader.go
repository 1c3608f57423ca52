package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/geolens-io/geolens/internal/core/domain"
)

// bulkCountry mirrors the restcountries v3 record shape. Only fields the
// registry keeps are decoded.
type bulkCountry struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	CCA3       string            `json:"cca3"`
	Population int64             `json:"population"`
	Area       float64           `json:"area"`
	Capital    []string          `json:"capital"`
	Region     string            `json:"region"`
	Subregion  string            `json:"subregion"`
	Languages  map[string]string `json:"languages"`
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
	Flag   string    `json:"flag"`
	LatLng []float64 `json:"latlng"`
}

// ParseBulk decodes a bulk country list payload into country records.
// The payload must be a JSON array; anything else is a schema error.
func ParseBulk(payload []byte) ([]domain.CountryRecord, error) {
	var raw []bulkCountry
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, domain.SchemaErrorf("bulk country list: %v", err)
	}
	records := make([]domain.CountryRecord, 0, len(raw))
	for _, c := range raw {
		rec := domain.CountryRecord{
			ISO3:         domain.ISO3(c.CCA3),
			CommonName:   c.Name.Common,
			OfficialName: c.Name.Official,
			Population:   c.Population,
			Area:         c.Area,
			Capital:      c.Capital,
			Region:       c.Region,
			Subregion:    c.Subregion,
			Languages:    c.Languages,
			FlagGlyph:    c.Flag,
		}
		if len(c.Currencies) > 0 {
			rec.Currencies = make(map[string]domain.Currency, len(c.Currencies))
			for code, cur := range c.Currencies {
				rec.Currencies[code] = domain.Currency{Name: cur.Name, Symbol: cur.Symbol}
			}
		}
		if len(c.LatLng) == 2 {
			rec.Centroid = domain.Coordinates{Lat: c.LatLng[0], Lon: c.LatLng[1]}
		}
		records = append(records, rec)
	}
	return records, nil
}

// Load fetches the bulk country list, trying endpoints strictly in order, and
// builds the registry. It fails closed: if every endpoint fails the returned
// registry is empty and every lookup misses.
func Load(ctx context.Context, client *http.Client, endpoints []string) *Registry {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	for _, url := range endpoints {
		records, err := fetchBulk(ctx, client, url)
		if err != nil {
			slog.Warn("registry: bulk load attempt failed", "url", url, "error", err)
			continue
		}
		reg := New(records)
		slog.Info("registry: loaded", "url", url, "countries", reg.Len())
		return reg
	}
	slog.Error("registry: all bulk load attempts failed, running with empty registry")
	return Empty()
}

func fetchBulk(ctx context.Context, client *http.Client, url string) ([]domain.CountryRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, domain.TransportErrorf("bulk country list: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.TransportErrorf("bulk country list: http %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.TransportErrorf("read response: %v", err)
	}
	return ParseBulk(body)
}
