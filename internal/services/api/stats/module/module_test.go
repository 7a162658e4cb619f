package module

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	modkit "needle/internal/modkit"
	"needle/internal/modkit/repokit"
	perr "needle/internal/platform/errors"
	phttp "needle/internal/platform/net/http"
)

type emptyCH struct{}

func (emptyCH) Insert(context.Context, string, [][]any) error { return nil }
func (emptyCH) Exec(context.Context, string, ...any) error    { return nil }
func (emptyCH) Close() error                                  { return nil }
func (emptyCH) Query(context.Context, string, ...any) (repokit.Rows, error) {
	return noRows{}, nil
}

type noRows struct{}

func (noRows) Next() bool        { return false }
func (noRows) Scan(...any) error { return nil }
func (noRows) Err() error        { return nil }
func (noRows) Close()            {}
func (noRows) Columns() []string { return nil }

func serve(t *testing.T, deps modkit.Deps, body string) (int, phttp.Envelope) {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	New(deps).MountRoutes(r)

	req := httptest.NewRequest(http.MethodPost, "/stats/summary", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, env
}

func TestSummaryRoute(t *testing.T) {
	t.Parallel()

	status, env := serve(t, modkit.Deps{}, "")
	if status != http.StatusServiceUnavailable || env.Code != perr.ErrorCodeUnavailable {
		t.Fatalf("disabled: %d %+v", status, env)
	}

	status, env = serve(t, modkit.Deps{CH: emptyCH{}}, `{"since_hours":6}`)
	if status != http.StatusOK {
		t.Fatalf("enabled: %d %+v", status, env)
	}

	status, env = serve(t, modkit.Deps{CH: emptyCH{}}, `{"since_hours":0.5}`)
	if status != http.StatusBadRequest || env.Code != perr.ErrorCodeJSON {
		t.Fatalf("bad body: %d %+v", status, env)
	}

	status, env = serve(t, modkit.Deps{CH: emptyCH{}}, `{"since_hours":9000}`)
	if status != http.StatusBadRequest || env.Field != "since_hours" {
		t.Fatalf("out of range: %d %+v", status, env)
	}
}
