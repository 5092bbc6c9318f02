// Package metrics holds the Prometheus collectors of artic-table and an
// optional HTTP listener that exposes them.
//
// Collectors:
//   - artic_requests_total{status} (Counter): catalog requests by HTTP status ("error" for transport failures)
//   - artic_request_duration_seconds (Histogram): catalog request latency
//   - artic_fetch_failures_total{operation} (Counter): failed fetches by operation ("page", "bulk_select")
//   - artic_stale_responses_total (Counter): page loads discarded because a newer load superseded them
//   - artic_bulk_select_pages_total (Counter): pages fetched by bulk selection
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artic_requests_total",
		Help: "Total catalog requests by HTTP status",
	}, []string{"status"})

	RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "artic_request_duration_seconds",
		Help:    "Catalog request duration in seconds",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	})

	FetchFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artic_fetch_failures_total",
		Help: "Failed catalog fetches by operation",
	}, []string{"operation"})

	StaleResponsesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "artic_stale_responses_total",
		Help: "Page loads discarded because a newer load superseded them",
	})

	BulkSelectPagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "artic_bulk_select_pages_total",
		Help: "Pages fetched by bulk selection",
	})
)

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("Metrics listener started")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		log.Info().Str("addr", addr).Msg("Metrics listener stopped")
		return nil
	}
}
