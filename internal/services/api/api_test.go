package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"needle/internal/platform/config"
	phttp "needle/internal/platform/net/http"
	kit "needle/internal/platform/testkit"
)

func newAPI(t *testing.T, swagger bool) http.Handler {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	mods := Mount(r, Options{Config: config.New().Prefix("APITEST_"), EnableSwagger: swagger})
	if len(mods) != 3 {
		t.Fatalf("modules = %d", len(mods))
	}
	return r.Mux()
}

func TestMount_Routes(t *testing.T) {
	kit.Serial(t)
	h := newAPI(t, false)

	cases := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/api/v1/meta/health", "", http.StatusOK},
		{http.MethodGet, "/api/v1/meta/ready", "", http.StatusOK},
		{http.MethodPost, "/api/v1/search/substring", `{"text":"hay needle hay","pattern":"needle"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/search/runs", "", http.StatusServiceUnavailable},
		{http.MethodPost, "/api/v1/stats/summary", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/api/docs/doc.json", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != tc.status {
			t.Fatalf("%s %s: %d want %d (%s)", tc.method, tc.path, rec.Code, tc.status, rec.Body.String())
		}
	}
}

func TestMount_RequestIDInEnvelope(t *testing.T) {
	kit.Serial(t)
	h := newAPI(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/search/first-word", strings.NewReader(`{"text":"a b"}`))
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.RequestID != "req-123" || env.StatusCode != http.StatusOK {
		t.Fatalf("env = %+v", env)
	}
}

func TestMount_Swagger(t *testing.T) {
	kit.Serial(t)
	h := newAPI(t, true)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json: %d", rec.Code)
	}
	kit.MustContain(t, rec.Body.String(), "/search/substring")
}

func TestSchema(t *testing.T) {
	t.Parallel()
	sc := Schema()
	if len(sc.PG) == 0 || len(sc.CH) == 0 {
		t.Fatalf("schema = %+v", sc)
	}
}
