package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operator-facing HTTP endpoints served next to the node: /health answers
// process liveness, /health/ready gates traffic on the local CometBFT node
// being reachable and caught up, and /health/detailed adds a runtime
// snapshot. Runs on its own port, separate from the SDK telemetry server.

var (
	processStart = time.Now()

	healthRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "silence_health_requests_total",
			Help: "Health endpoint requests by endpoint and HTTP status",
		},
		[]string{"endpoint", "status"},
	)

	healthCheckUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "silence_health_check_up",
			Help: "1 when the named readiness check passes",
		},
		[]string{"check"},
	)
)

type checkResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type livenessResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type readinessResponse struct {
	Status string                 `json:"status"`
	Checks map[string]checkResult `json:"checks"`
}

type nodeSnapshot struct {
	Height     int64 `json:"height"`
	Peers      int   `json:"peers"`
	CatchingUp bool  `json:"catching_up"`
}

type runtimeSnapshot struct {
	MemoryMB   uint64 `json:"memory_mb"`
	Goroutines int    `json:"goroutines"`
}

type detailedResponse struct {
	Status        string                 `json:"status"`
	UptimeSeconds int64                  `json:"uptime_seconds"`
	Version       string                 `json:"version"`
	Checks        map[string]checkResult `json:"checks"`
	Node          nodeSnapshot           `json:"node"`
	Runtime       runtimeSnapshot        `json:"runtime"`
}

const detailedCacheTTL = 5 * time.Second

type healthServer struct {
	server *http.Server
	probe  nodeProbe

	mu       sync.Mutex
	cached   *detailedResponse
	cachedAt time.Time
}

func newHealthServer(probe nodeProbe) *healthServer {
	return &healthServer{probe: probe}
}

func (hs *healthServer) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", hs.instrument("health", hs.handleLiveness))
	mux.HandleFunc("/health/ready", hs.instrument("ready", hs.handleReadiness))
	mux.HandleFunc("/health/detailed", hs.instrument("detailed", hs.handleDetailed))
	return mux
}

// startHealthServer serves the health endpoints on the given port in the
// background. Bind or serve failures are reported, not fatal: the node keeps
// running without its sidecar.
func startHealthServer(port int, probe nodeProbe) *healthServer {
	hs := newHealthServer(probe)
	hs.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           hs.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	go func() {
		if err := hs.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "health server: %v\n", err)
		}
	}()

	return hs
}

func (hs *healthServer) Shutdown(ctx context.Context) error {
	if hs.server == nil {
		return nil
	}
	return hs.server.Shutdown(ctx)
}

func (hs *healthServer) instrument(endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		handler(rec, r)
		healthRequests.WithLabelValues(endpoint, fmt.Sprintf("%d", rec.code)).Inc()
	}
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (hs *healthServer) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, livenessResponse{
		Status:    "ok",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// runChecks performs the readiness checks and reports whether all passed.
func (hs *healthServer) runChecks() (map[string]checkResult, bool) {
	checks := make(map[string]checkResult)
	ready := true

	record := func(name string, result checkResult, ok bool) {
		checks[name] = result
		up := 0.0
		if ok {
			up = 1.0
		}
		healthCheckUp.WithLabelValues(name).Set(up)
		ready = ready && ok
	}

	if hs.probe == nil {
		return checks, ready
	}

	if err := hs.probe.Live(); err != nil {
		record("rpc", checkResult{Status: "unhealthy", Message: err.Error()}, false)
	} else {
		record("rpc", checkResult{Status: "ok"}, true)
	}

	state, err := hs.probe.SyncState()
	switch {
	case err != nil:
		record("sync", checkResult{Status: "unhealthy", Message: err.Error()}, false)
	case state.CatchingUp:
		record("sync", checkResult{
			Status:  "syncing",
			Message: fmt.Sprintf("catching up at height %d", state.Height),
		}, false)
	default:
		record("sync", checkResult{Status: "ok"}, true)
	}

	return checks, ready
}

func (hs *healthServer) handleReadiness(w http.ResponseWriter, _ *http.Request) {
	checks, ready := hs.runChecks()

	status, code := "ready", http.StatusOK
	if !ready {
		status, code = "not_ready", http.StatusServiceUnavailable
	}
	writeJSON(w, code, readinessResponse{Status: status, Checks: checks})
}

func (hs *healthServer) handleDetailed(w http.ResponseWriter, _ *http.Request) {
	hs.mu.Lock()
	if hs.cached != nil && time.Since(hs.cachedAt) <= detailedCacheTTL {
		cached := hs.cached
		hs.mu.Unlock()
		w.Header().Set("X-Cache", "HIT")
		writeJSON(w, http.StatusOK, cached)
		return
	}
	hs.mu.Unlock()

	checks, ready := hs.runChecks()
	status := "healthy"
	if !ready {
		status = "unhealthy"
	}

	var node nodeSnapshot
	if hs.probe != nil {
		if state, err := hs.probe.SyncState(); err == nil {
			node.Height = state.Height
			node.CatchingUp = state.CatchingUp
		}
		node.Peers, _ = hs.probe.PeerCount()
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	response := &detailedResponse{
		Status:        status,
		UptimeSeconds: int64(time.Since(processStart).Seconds()),
		Version:       nodeVersion(),
		Checks:        checks,
		Node:          node,
		Runtime: runtimeSnapshot{
			MemoryMB:   mem.Alloc / 1024 / 1024,
			Goroutines: runtime.NumGoroutine(),
		},
	}

	hs.mu.Lock()
	hs.cached = response
	hs.cachedAt = time.Now()
	hs.mu.Unlock()

	w.Header().Set("X-Cache", "MISS")
	writeJSON(w, http.StatusOK, response)
}

func nodeVersion() string {
	if version := os.Getenv("SILENCE_VERSION"); version != "" {
		return version
	}
	return "dev"
}
