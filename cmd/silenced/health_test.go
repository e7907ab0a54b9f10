package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubProbe struct {
	liveErr error
	state   syncState
	syncErr error
	peers   int
}

func (s *stubProbe) Live() error                   { return s.liveErr }
func (s *stubProbe) SyncState() (syncState, error) { return s.state, s.syncErr }
func (s *stubProbe) PeerCount() (int, error)       { return s.peers, nil }

func healthTestServer(t *testing.T, probe nodeProbe) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(newHealthServer(probe).routes())
	t.Cleanup(srv.Close)
	return srv
}

func getDecoded(t *testing.T, url string, out interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func TestLivenessAlwaysOK(t *testing.T) {
	srv := healthTestServer(t, &stubProbe{liveErr: errors.New("rpc down")})

	var body livenessResponse
	resp := getDecoded(t, srv.URL+"/health", &body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("liveness status = %d, want 200", resp.StatusCode)
	}
	if body.Status != "ok" || body.Timestamp == "" {
		t.Fatalf("unexpected liveness body: %+v", body)
	}
}

func TestReadinessWhenCaughtUp(t *testing.T) {
	srv := healthTestServer(t, &stubProbe{state: syncState{Height: 12345}, peers: 5})

	var body readinessResponse
	resp := getDecoded(t, srv.URL+"/health/ready", &body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("readiness status = %d, want 200", resp.StatusCode)
	}
	if body.Status != "ready" {
		t.Fatalf("readiness = %q, want ready", body.Status)
	}
}

func TestReadinessWhileCatchingUp(t *testing.T) {
	srv := healthTestServer(t, &stubProbe{state: syncState{CatchingUp: true, Height: 99}})

	var body readinessResponse
	resp := getDecoded(t, srv.URL+"/health/ready", &body)

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("readiness status = %d, want 503", resp.StatusCode)
	}
	if body.Status != "not_ready" {
		t.Fatalf("readiness = %q, want not_ready", body.Status)
	}
	if body.Checks["sync"].Status != "syncing" {
		t.Fatalf("sync check = %q, want syncing", body.Checks["sync"].Status)
	}
}

func TestReadinessWhenRPCUnreachable(t *testing.T) {
	srv := healthTestServer(t, &stubProbe{liveErr: errors.New("connection refused")})

	var body readinessResponse
	resp := getDecoded(t, srv.URL+"/health/ready", &body)

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("readiness status = %d, want 503", resp.StatusCode)
	}
	if body.Checks["rpc"].Status != "unhealthy" {
		t.Fatalf("rpc check = %q, want unhealthy", body.Checks["rpc"].Status)
	}
}

func TestDetailedSnapshot(t *testing.T) {
	srv := healthTestServer(t, &stubProbe{state: syncState{Height: 12345}, peers: 5})

	var body detailedResponse
	resp := getDecoded(t, srv.URL+"/health/detailed", &body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("detailed status = %d, want 200", resp.StatusCode)
	}
	if body.Status != "healthy" {
		t.Fatalf("detailed status = %q, want healthy", body.Status)
	}
	if body.Node.Height != 12345 || body.Node.Peers != 5 {
		t.Fatalf("unexpected node snapshot: %+v", body.Node)
	}
	if body.Runtime.Goroutines == 0 {
		t.Fatal("runtime snapshot missing goroutine count")
	}
}

func TestDetailedSnapshotIsCached(t *testing.T) {
	srv := healthTestServer(t, &stubProbe{state: syncState{Height: 1}})

	first := getDecoded(t, srv.URL+"/health/detailed", nil)
	if got := first.Header.Get("X-Cache"); got != "MISS" {
		t.Fatalf("first request X-Cache = %q, want MISS", got)
	}

	second := getDecoded(t, srv.URL+"/health/detailed", nil)
	if got := second.Header.Get("X-Cache"); got != "HIT" {
		t.Fatalf("second request X-Cache = %q, want HIT", got)
	}
}
