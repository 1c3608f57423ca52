package enrich

import (
	"strings"

	"github.com/geolens-io/geolens/internal/core/domain"
	"github.com/geolens-io/geolens/internal/registry"
)

// docPaths maps ISO3 codes to factbook-style document paths. The table is
// static and deliberately incomplete: a country without an entry simply
// yields empty enrichment fields, which is a normal outcome.
var docPaths = map[domain.ISO3]string{
	"ARG": "south-america/ar",
	"AUS": "australia-oceania/as",
	"AUT": "europe/au",
	"BEL": "europe/be",
	"BRA": "south-america/br",
	"CAN": "north-america/ca",
	"CHE": "europe/sz",
	"CHL": "south-america/ci",
	"CHN": "east-n-southeast-asia/ch",
	"COL": "south-america/co",
	"CZE": "europe/ez",
	"DEU": "europe/gm",
	"DNK": "europe/da",
	"EGY": "africa/eg",
	"ESP": "europe/sp",
	"ETH": "africa/et",
	"FIN": "europe/fi",
	"FRA": "europe/fr",
	"GBR": "europe/uk",
	"GRC": "europe/gr",
	"IDN": "east-n-southeast-asia/id",
	"IND": "south-asia/in",
	"IRL": "europe/ei",
	"IRN": "middle-east/ir",
	"ISR": "middle-east/is",
	"ITA": "europe/it",
	"JPN": "east-n-southeast-asia/ja",
	"KEN": "africa/ke",
	"KOR": "east-n-southeast-asia/ks",
	"MEX": "north-america/mx",
	"NGA": "africa/ni",
	"NLD": "europe/nl",
	"NOR": "europe/no",
	"NZL": "australia-oceania/nz",
	"PAK": "south-asia/pk",
	"PHL": "east-n-southeast-asia/rp",
	"POL": "europe/pl",
	"PRT": "europe/po",
	"RUS": "central-asia/rs",
	"SAU": "middle-east/sa",
	"SWE": "europe/sw",
	"THA": "east-n-southeast-asia/th",
	"TUR": "middle-east/tu",
	"UKR": "europe/up",
	"USA": "north-america/us",
	"VNM": "east-n-southeast-asia/vm",
	"ZAF": "africa/sf",
}

// docPathsByName covers lookups where only a display name is at hand.
// Keys are normalized common names.
var docPathsByName = map[string]string{}

func init() {
	// The name index is derived from a small name→code table rather than
	// duplicating paths.
	for name, code := range map[string]domain.ISO3{
		"france":         "FRA",
		"germany":        "DEU",
		"united states":  "USA",
		"united kingdom": "GBR",
		"south korea":    "KOR",
		"russia":         "RUS",
	} {
		docPathsByName[name] = docPaths[code]
	}
}

// DocPath resolves the source document path for a country. The code wins;
// the common name is a fallback for callers without one.
func DocPath(iso3 domain.ISO3, commonName string) (string, bool) {
	if p, ok := docPaths[domain.ISO3(strings.ToUpper(string(iso3)))]; ok {
		return p, true
	}
	if p, ok := docPathsByName[registry.Normalize(commonName)]; ok && p != "" {
		return p, true
	}
	return "", false
}
