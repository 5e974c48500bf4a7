// Package http exposes a running tree over HTTP: liveness, the latest tick
// and Prometheus metrics.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/arbor/pkg/observability"
)

// ShutdownTimeout bounds how long Serve waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// TickState is the JSON body of GET /status.
type TickState struct {
	Tree       string `json:"tree"`
	Ticks      uint64 `json:"ticks"`
	Status     string `json:"status"`
	DurationMS int64  `json:"duration_ms"`
	LeafErrors uint64 `json:"leaf_errors"`
}

// Monitor records the latest tick of a tree. The runner ticks from its own
// goroutine, so access is guarded.
type Monitor struct {
	mu    sync.RWMutex
	state TickState
}

// NewMonitor returns a Monitor with no ticks recorded.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// Hooks returns hooks that feed the monitor.
func (m *Monitor) Hooks() observability.Hooks {
	return observability.Hooks{
		OnTickEnd: func(e observability.TickEvent) {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.state.Tree = e.Tree
			m.state.Ticks = e.Seq
			m.state.Status = e.Status.String()
			m.state.DurationMS = e.Duration.Milliseconds()
		},
		OnLeafError: func(observability.LeafErrorEvent) {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.state.LeafErrors++
		},
	}
}

// State returns a copy of the latest tick.
func (m *Monitor) State() TickState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// NewHandler routes /health, /status and /metrics. A nil gatherer serves the
// default Prometheus registry. A nil logger discards encode failures.
func NewHandler(m *Monitor, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, map[string]string{"status": "ok"})
	})
	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, m.State())
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encode response", "error", err)
	}
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("metrics server listening", "addr", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown did not complete", "error", err)
		return srv.Close()
	}
	logger.Info("metrics server stopped")
	return nil
}
