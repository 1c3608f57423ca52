package fetch

import (
	"context"
	"log/slog"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/geolens-io/geolens/internal/core/domain"
	"github.com/geolens-io/geolens/internal/metrics"
)

// Attempt is one provider in an ordered chain: a name for diagnostics and a
// closure that fetches, validates and decodes the category payload.
type Attempt[T any] struct {
	Provider string
	Run      func(ctx context.Context) (T, error)
}

// AttemptResult is the tagged outcome of one provider attempt.
type AttemptResult struct {
	Provider string
	Err      error // nil on success
	Elapsed  time.Duration
}

// Outcome labels an attempt result for metrics.
func (r AttemptResult) Outcome() string {
	switch {
	case r.Err == nil:
		return "success"
	case domain.IsSchema(r.Err):
		return "schema_error"
	default:
		return "transport_error"
	}
}

// RunChain tries providers strictly in order, stopping at the first success.
// Every failure, transport or schema, means "try the next provider"; nothing
// is surfaced to the caller. If the whole chain fails the bundled fallback
// is returned and fromFallback is true. Each attempt is bounded by
// attemptTimeout when it is positive. The tagged per-attempt results are
// returned for diagnostics.
func RunChain[T any](
	ctx context.Context,
	category domain.Category,
	attempts []Attempt[T],
	attemptTimeout time.Duration,
	fallback func() T,
) (value T, results []AttemptResult, fromFallback bool) {
	var chainErr error

	for _, a := range attempts {
		attemptCtx := ctx
		cancel := context.CancelFunc(func() {})
		if attemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, attemptTimeout)
		}

		start := time.Now()
		got, err := a.Run(attemptCtx)
		cancel()

		res := AttemptResult{Provider: a.Provider, Err: err, Elapsed: time.Since(start)}
		results = append(results, res)
		metrics.ProviderAttemptsTotal.WithLabelValues(string(category), a.Provider, res.Outcome()).Inc()
		metrics.ProviderLatency.WithLabelValues(string(category), a.Provider).Observe(res.Elapsed.Seconds())

		if err == nil {
			return got, results, false
		}

		slog.Warn("fetch: provider attempt failed",
			"category", category,
			"provider", a.Provider,
			"outcome", res.Outcome(),
			"elapsed", res.Elapsed,
			"error", err,
		)
		chainErr = multierror.Append(chainErr, err)

		// A cancelled selection stops the chain; the fallback still keeps
		// the result well-formed for anyone awaiting it.
		if ctx.Err() != nil {
			break
		}
	}

	slog.Error("fetch: all providers failed, serving fallback",
		"category", category,
		"providers", len(attempts),
		"error", chainErr,
	)
	metrics.FallbackTotal.WithLabelValues(string(category)).Inc()
	return fallback(), results, true
}
