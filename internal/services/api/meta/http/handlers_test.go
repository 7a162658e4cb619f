package http

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	phttp "needle/internal/platform/net/http"
	kit "needle/internal/platform/testkit"
)

type pinger struct{ err error }

func (p pinger) Ping(stdctx.Context) error { return p.err }

func get(t *testing.T, d Deps, path string, out any) int {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, d)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return rec.Code
}

func TestReady(t *testing.T) {
	kit.Serial(t)
	cases := []struct {
		name    string
		pg, ch  any
		status  int
		overall string
	}{
		{"all skipped", nil, nil, http.StatusOK, "ok"},
		{"pg ok ch skipped", pinger{}, nil, http.StatusOK, "ok"},
		{"both ok", pinger{}, pinger{}, http.StatusOK, "ok"},
		{"unknown adapter", struct{}{}, nil, http.StatusOK, "degraded"},
		{"ch down", pinger{}, pinger{err: errors.New("refused")}, http.StatusServiceUnavailable, "fail"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out ReadyResponse
			status := get(t, Deps{ServiceName: "needle-api", PG: tc.pg, CH: tc.ch}, "/ready", &out)
			if status != tc.status || out.Status != tc.overall || len(out.Checks) != 2 {
				t.Fatalf("status=%d body=%+v", status, out)
			}
		})
	}
}

func TestHealthAndService(t *testing.T) {
	kit.Serial(t)
	started := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	kit.Swap(t, &now, func() time.Time { return started.Add(90 * time.Second) })
	d := Deps{ServiceName: "needle-api", StartedAt: started}

	var hr HealthResponse
	if code := get(t, d, "/health", &hr); code != http.StatusOK || !hr.OK || hr.Service != "needle-api" {
		t.Fatalf("health %d %+v", code, hr)
	}

	var sr ServiceResponse
	if code := get(t, d, "/service", &sr); code != http.StatusOK || sr.Uptime != 90 {
		t.Fatalf("service %d %+v", code, sr)
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()
	var v struct {
		Service string `json:"service"`
		Version string `json:"version"`
	}
	if code := get(t, Deps{}, "/version", &v); code != http.StatusOK || v.Service != "needle-api" || v.Version == "" {
		t.Fatalf("version %d %+v", code, v)
	}
}
