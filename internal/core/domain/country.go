package domain

// ISO3 is the canonical three-letter country code used as the record key.
type ISO3 string

// Valid reports whether c is exactly three ASCII uppercase letters.
func (c ISO3) Valid() bool {
	if len(c) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return false
		}
	}
	return true
}

// Coordinates is a latitude/longitude pair (country centroid).
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Currency describes one currency used by a country.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// CountryRecord is the canonical country entry. Records are immutable once
// loaded by the registry; identity is the ISO3 code.
type CountryRecord struct {
	ISO3         ISO3                `json:"iso3"`
	CommonName   string              `json:"common_name"`
	OfficialName string              `json:"official_name"`
	Population   int64               `json:"population"`
	Area         float64             `json:"area"` // km²
	Capital      []string            `json:"capital,omitempty"`
	Region       string              `json:"region"`
	Subregion    string              `json:"subregion,omitempty"`
	Languages    map[string]string   `json:"languages,omitempty"`
	Currencies   map[string]Currency `json:"currencies,omitempty"`
	FlagGlyph    string              `json:"flag_glyph,omitempty"`
	Centroid     Coordinates         `json:"centroid"`
}
