package http

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"needle/internal/platform/config"
	perr "needle/internal/platform/errors"
	lumnet "needle/internal/platform/net"

	"github.com/go-chi/chi/v5"
)

type echoIn struct {
	Text string `json:"text" validate:"max=8"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad json %q: %v", rr.Body.String(), err)
	}
	return env
}

func newRouter() Router {
	r := AdaptChi(chi.NewRouter())
	r.Route("/api", func(api Router) {
		api.Group(func(g Router) {
			GetJSON(g, "/ping", func(*stdhttp.Request) (any, error) { return "pong", nil })
			GetJSON(g, "/missing", func(*stdhttp.Request) (any, error) { return nil, perr.NotFoundf("run not found") })
			PostJSON(g, "/echo", func(_ *stdhttp.Request, in echoIn) (any, error) { return in.Text, nil })
		})
	})
	r.Handle("/raw", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusTeapot)
	}))
	return r
}

func TestRouter_JSONRoutes(t *testing.T) {
	t.Parallel()

	h := newRouter().Mux()
	cases := []struct {
		method, path, body string
		status             int
		data               any
		code               perr.ErrorCode
	}{
		{stdhttp.MethodGet, "/api/ping", "", 200, "pong", 0},
		{stdhttp.MethodGet, "/api/missing", "", 404, nil, perr.ErrorCodeNotFound},
		{stdhttp.MethodPost, "/api/echo", `{"text":"hi"}`, 200, "hi", 0},
		{stdhttp.MethodPost, "/api/echo", `{"text":"way too long"}`, 400, nil, perr.ErrorCodeValidation},
		{stdhttp.MethodPost, "/api/echo", `{`, 400, nil, perr.ErrorCodeJSON},
	}
	for _, c := range cases {
		req := httptest.NewRequest(c.method, c.path, strings.NewReader(c.body))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != c.status {
			t.Fatalf("%s %s status %d want %d", c.method, c.path, rr.Code, c.status)
		}
		env := decode(t, rr)
		if env.StatusCode != c.status || env.Code != c.code || env.Data != c.data {
			t.Fatalf("%s %s envelope %+v", c.method, c.path, env)
		}
		if got := rr.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
			t.Fatalf("content type %q", got)
		}
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/raw", nil))
	if rr.Code != stdhttp.StatusTeapot {
		t.Fatalf("Handle route status %d", rr.Code)
	}
}

func TestResponse_HeadersAndNoContent(t *testing.T) {
	t.Parallel()

	h := Handle(func(*stdhttp.Request) Response {
		return Response{Status: stdhttp.StatusNoContent, Header: stdhttp.Header{"X-Run": {"1"}}}
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(stdhttp.MethodGet, "/", nil))
	if rr.Code != stdhttp.StatusNoContent || rr.Header().Get("X-Run") != "1" || rr.Body.Len() != 0 {
		t.Fatalf("no content response %d %q", rr.Code, rr.Body.String())
	}

	// request id from context shows up in the envelope
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	req = req.WithContext(lumnet.WithRequest(req.Context(), "rid-1"))
	rr = httptest.NewRecorder()
	RespondOK(rr, req, 7)
	if env := decode(t, rr); env.RequestID != "rid-1" || env.Data != float64(7) {
		t.Fatalf("envelope %+v", env)
	}

	rr = httptest.NewRecorder()
	Handle(func(*stdhttp.Request) Response { return Error(perr.Unavailablef("history disabled")) })(rr, req)
	if env := decode(t, rr); rr.Code != 503 || env.Error != "history disabled" || env.RequestID != "rid-1" {
		t.Fatalf("error envelope %d %+v", rr.Code, env)
	}
}

func TestMountProfiler(t *testing.T) {
	t.Parallel()

	on := AdaptChi(chi.NewRouter())
	MountProfiler(on, "/debug", true)
	rr := httptest.NewRecorder()
	on.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/debug/pprof/", nil))
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("profiler enabled status %d", rr.Code)
	}

	off := AdaptChi(chi.NewRouter())
	MountProfiler(off, "/debug", false)
	rr = httptest.NewRecorder()
	off.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/debug/pprof/", nil))
	if rr.Code != stdhttp.StatusNotFound {
		t.Fatalf("profiler disabled status %d", rr.Code)
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	t.Setenv("NEEDLE_HTTP_TEST_API_PORT", "127.0.0.1:0")
	t.Setenv("NEEDLE_HTTP_TEST_SHUTDOWN_GRACE", "2s")

	s := NewServer(config.New().Prefix("NEEDLE_HTTP_TEST_"), func(m *chi.Mux) {
		AdaptChi(m).Get("/up", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(204) })
	})
	if s.Addr() != "127.0.0.1:0" {
		t.Fatalf("addr %q", s.Addr())
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := stdhttp.Get("http://" + ln.Addr().String() + "/up")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != 204 {
		t.Fatalf("status %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunListenError(t *testing.T) {
	t.Setenv("NEEDLE_HTTP_BAD_API_PORT", "256.0.0.1:bad")

	s := NewServer(config.New().Prefix("NEEDLE_HTTP_BAD_"))
	if err := s.Run(context.Background()); err == nil || errors.Is(err, stdhttp.ErrServerClosed) {
		t.Fatalf("expected listen error, got %v", err)
	}
}
