// Package control wires the core components together and owns the
// selection lifecycle and joint multi-category fetches.
package control

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/geolens-io/geolens/internal/cache"
	"github.com/geolens-io/geolens/internal/core/config"
	"github.com/geolens-io/geolens/internal/core/domain"
	"github.com/geolens-io/geolens/internal/enrich"
	"github.com/geolens-io/geolens/internal/fetch"
	"github.com/geolens-io/geolens/internal/registry"
)

// Controller owns the long-lived core components: registry, cache, fetch
// service, enrichment assembler and the selection session.
type Controller struct {
	Registry  *registry.Registry
	Cache     *cache.Cache
	Fetch     *fetch.Service
	Assembler *enrich.Assembler
	Session   *Session
}

// New loads the registry and assembles the core. An empty registry after a
// failed bulk load is degraded but not fatal: resolution will miss, data
// categories still serve.
func New(ctx context.Context, cfg *config.AppConfig) *Controller {
	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	reg := registry.Load(loadCtx, nil, cfg.Registry.Endpoints)

	c := cache.New(time.Duration(cfg.Cache.TTL))
	svc := fetch.NewService(cfg.Sources.FetchConfig(), c)
	asm := enrich.NewAssembler(svc)

	return &Controller{
		Registry:  reg,
		Cache:     c,
		Fetch:     svc,
		Assembler: asm,
		Session:   NewSession(reg, asm),
	}
}

// Overview bundles every ranking/series view for one request.
type Overview struct {
	Population []domain.RankingRecord      `json:"population"`
	GDP        []domain.RankingRecord      `json:"gdp"`
	Languages  []domain.DistributionEntry  `json:"languages"`
	Religion   []domain.DistributionEntry  `json:"religion"`
	Growth     []domain.GrowthSeries       `json:"growth,omitempty"`
}

// Overview fetches all categories concurrently and awaits them jointly.
// Categories resolve independently to live or fallback data; a failure in
// one chain never cancels another.
func (c *Controller) Overview(ctx context.Context, codes []domain.ISO3) Overview {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out.Population = c.Fetch.Ranking(gctx, domain.CategoryPopulation, 0)
		return nil
	})
	g.Go(func() error {
		out.GDP = c.Fetch.Ranking(gctx, domain.CategoryGDP, 0)
		return nil
	})
	g.Go(func() error {
		out.Languages = c.Fetch.Distribution(gctx, domain.CategoryLanguages, 0)
		return nil
	})
	g.Go(func() error {
		out.Religion = c.Fetch.Distribution(gctx, domain.CategoryReligion, 0)
		return nil
	})
	if len(codes) > 0 {
		g.Go(func() error {
			out.Growth = c.Fetch.GrowthSeries(gctx, codes)
			return nil
		})
	}

	// Category fetches never return errors; the group only joins them.
	_ = g.Wait()
	return out
}

// ClearCache drops all cached payloads, typically on session reset.
func (c *Controller) ClearCache() {
	c.Cache.Clear()
	slog.Info("control: cache cleared")
}
