package control

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/geolens-io/geolens/internal/core/domain"
	"github.com/geolens-io/geolens/internal/metrics"
	"github.com/geolens-io/geolens/internal/registry"
	"github.com/geolens-io/geolens/internal/resolve"
)

// State of a single country selection.
type State string

const (
	StateIdle              State = "idle"
	StateResolving         State = "resolving"
	StateNotFound          State = "not_found"          // terminal
	StateResolved          State = "resolved"
	StateEnrichmentPending State = "enrichment_pending"
	StateEnrichmentReady   State = "enrichment_ready" // terminal, fields possibly empty
)

// Selection is a snapshot of the current selection lifecycle.
type Selection struct {
	ID         uuid.UUID
	Epoch      uint64
	State      State
	Record     *domain.CountryRecord
	Enrichment domain.EnrichmentFields
}

// Enricher produces best-effort enrichment fields for a country.
type Enricher interface {
	Enrich(ctx context.Context, iso3 domain.ISO3, commonName string) domain.EnrichmentFields
}

// Session tracks the active selection. Each Select bumps a monotonic epoch;
// an enrichment result arriving for an older epoch is discarded instead of
// overwriting the newer selection's state.
type Session struct {
	mu       sync.Mutex
	epoch    uint64
	current  Selection
	reg      *registry.Registry
	enricher Enricher

	// events receives terminal snapshots (NotFound, EnrichmentReady).
	// Best-effort: a slow consumer drops events, never blocks the session.
	events chan Selection
}

// NewSession creates a selection session over a registry and an enricher.
func NewSession(reg *registry.Registry, enricher Enricher) *Session {
	return &Session{
		reg:      reg,
		enricher: enricher,
		current:  Selection{State: StateIdle},
		events:   make(chan Selection, 8),
	}
}

// Select resolves a boundary feature and, on success, starts the
// enrichment fetch in the background. The returned snapshot is either
// terminal (NotFound) or EnrichmentPending; the terminal EnrichmentReady
// snapshot arrives on Events and via Current.
func (s *Session) Select(ctx context.Context, f domain.BoundaryFeature) Selection {
	s.mu.Lock()
	s.epoch++
	epoch := s.epoch
	sel := Selection{ID: uuid.New(), Epoch: epoch, State: StateResolving}
	s.current = sel
	s.mu.Unlock()

	rec, ok := resolve.Resolve(f, s.reg)
	if !ok {
		return s.transition(epoch, func(sel *Selection) {
			sel.State = StateNotFound
		})
	}

	snapshot := s.transition(epoch, func(sel *Selection) {
		sel.Record = rec
		sel.State = StateEnrichmentPending
	})
	if snapshot.Epoch != epoch {
		// Already superseded while resolving.
		return snapshot
	}

	go func() {
		fields := s.enricher.Enrich(ctx, rec.ISO3, rec.CommonName)
		s.transition(epoch, func(sel *Selection) {
			sel.Enrichment = fields
			sel.State = StateEnrichmentReady
		})
	}()

	return snapshot
}

// Current returns the latest selection snapshot.
func (s *Session) Current() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Events delivers terminal selection snapshots.
func (s *Session) Events() <-chan Selection {
	return s.events
}

// transition applies fn to the current selection if epoch is still the
// active one, returning the resulting snapshot. A stale epoch leaves the
// state untouched and returns the newer snapshot.
func (s *Session) transition(epoch uint64, fn func(*Selection)) Selection {
	s.mu.Lock()
	if epoch != s.epoch {
		cur := s.current
		s.mu.Unlock()
		metrics.StaleResultsDiscarded.Inc()
		slog.Debug("session: discarding stale result", "stale_epoch", epoch, "current_epoch", cur.Epoch)
		return cur
	}
	fn(&s.current)
	cur := s.current
	s.mu.Unlock()

	if cur.State == StateNotFound || cur.State == StateEnrichmentReady {
		select {
		case s.events <- cur:
		default:
		}
	}
	return cur
}
