package fetch

import (
	"embed"
	"fmt"

	"github.com/geolens-io/geolens/internal/core/domain"
)

//go:embed fallbackdata
var fallbackFS embed.FS

// Bundled static datasets served when every live provider in a chain fails.
// Shaped and sorted identically to a successful response.
var (
	fallbackPopulation = mustRanking("fallbackdata/population.json")
	fallbackGDP        = mustRanking("fallbackdata/gdp.json")
	fallbackLanguages  = mustDistribution("fallbackdata/languages.json")
	fallbackReligion   = mustDistribution("fallbackdata/religion.json")
	fallbackGrowth     = mustGrowth("fallbackdata/growth.json")
)

// FallbackRanking returns the bundled ranking for a category, truncated to
// topN, or nil for categories without a country ranking.
func FallbackRanking(category domain.Category, topN int) []domain.RankingRecord {
	var src []domain.RankingRecord
	switch category {
	case domain.CategoryPopulation:
		src = fallbackPopulation
	case domain.CategoryGDP:
		src = fallbackGDP
	default:
		return nil
	}
	if topN > 0 && len(src) > topN {
		src = src[:topN]
	}
	return append([]domain.RankingRecord(nil), src...)
}

// FallbackDistribution returns the bundled name/value list for languages or
// religion.
func FallbackDistribution(category domain.Category, topN int) []domain.DistributionEntry {
	var src []domain.DistributionEntry
	switch category {
	case domain.CategoryLanguages:
		src = fallbackLanguages
	case domain.CategoryReligion:
		src = fallbackReligion
	default:
		return nil
	}
	if topN > 0 && len(src) > topN {
		src = src[:topN]
	}
	return append([]domain.DistributionEntry(nil), src...)
}

// FallbackGrowth returns bundled growth series for the requested codes. If
// none of the requested codes is covered, the whole bundled set is returned
// so the result is never empty.
func FallbackGrowth(codes []domain.ISO3) []domain.GrowthSeries {
	if len(codes) == 0 {
		return append([]domain.GrowthSeries(nil), fallbackGrowth...)
	}
	wanted := make(map[domain.ISO3]bool, len(codes))
	for _, c := range codes {
		wanted[c] = true
	}
	var out []domain.GrowthSeries
	for _, s := range fallbackGrowth {
		if wanted[s.ISO3] {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return append([]domain.GrowthSeries(nil), fallbackGrowth...)
	}
	return out
}

func mustRanking(path string) []domain.RankingRecord {
	records, err := ParseRankingList(mustRead(path), 0)
	if err != nil {
		panic(fmt.Sprintf("fetch: bad bundled dataset %s: %v", path, err))
	}
	return records
}

func mustDistribution(path string) []domain.DistributionEntry {
	entries, err := ParseDistribution(mustRead(path), 0)
	if err != nil {
		panic(fmt.Sprintf("fetch: bad bundled dataset %s: %v", path, err))
	}
	return entries
}

func mustGrowth(path string) []domain.GrowthSeries {
	series, err := ParseGrowthList(mustRead(path))
	if err != nil {
		panic(fmt.Sprintf("fetch: bad bundled dataset %s: %v", path, err))
	}
	return series
}

func mustRead(path string) []byte {
	data, err := fallbackFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("fetch: missing bundled dataset %s: %v", path, err))
	}
	return data
}
