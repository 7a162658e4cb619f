package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestError_WrapAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := stderrs.New("boom")
	err := Wrap(cause, ErrorCodeDB, "insert run")
	if err.Error() != "insert run: boom" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !stderrs.Is(err, cause) || Root(err) != cause {
		t.Fatal("cause not reachable")
	}
	if CodeOf(err) != ErrorCodeDB || !IsCode(err, ErrorCodeDB) {
		t.Fatalf("CodeOf = %v", CodeOf(err))
	}
	if WrapIf(nil, ErrorCodeDB, "x") != nil {
		t.Fatal("WrapIf(nil) must be nil")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{Validationf("bad"), http.StatusBadRequest},
		{JSONErrf("bad"), http.StatusBadRequest},
		{InvalidArgf("too long"), http.StatusUnprocessableEntity},
		{NotFoundf("run %s", "x"), http.StatusNotFound},
		{Unavailablef("history disabled"), http.StatusServiceUnavailable},
		{New(ErrorCodeDuplicateKey, "dup"), http.StatusConflict},
		{DBf("db"), http.StatusInternalServerError},
		{PanicErrf("p"), http.StatusInternalServerError},
		{stderrs.New("foreign"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Errorf("HTTPStatus(%v) = %d want %d", c.err, got, c.want)
		}
	}
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v", w)
	}
}

func TestErrorCode_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code   ErrorCode
		name   string
		status int
	}{
		{ErrorCodeUnknown, "unknown", http.StatusInternalServerError},
		{ErrorCodeUnavailable, "unavailable", http.StatusServiceUnavailable},
		{ErrorCodeInvalidArgument, "invalid_argument", http.StatusUnprocessableEntity},
		{ErrorCodeValidation, "validation", http.StatusBadRequest},
		{ErrorCodeDB, "db", http.StatusInternalServerError},
		{ErrorCode(99), "code(99)", http.StatusInternalServerError},
	}
	for _, c := range cases {
		if c.code.String() != c.name || c.code.Status() != c.status {
			t.Errorf("%d: got %q %d want %q %d", c.code, c.code.String(), c.code.Status(), c.name, c.status)
		}
	}
	// wire numbers are fixed
	if ErrorCodeInvalidArgument != 3 || ErrorCodeValidation != 4 || ErrorCodeDB != 8 {
		t.Fatal("error code numbering changed")
	}
}

func TestError_OpInMessageNotWire(t *testing.T) {
	t.Parallel()

	err := WithOp(Wrap(stderrs.New("conn reset"), ErrorCodeDB, "list runs"), "search.history")
	if err.Error() != "search.history: list runs: conn reset" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if w := WireFrom(err); w.Message != "list runs" {
		t.Fatalf("op or cause leaked to wire: %+v", w)
	}
	if Root(nil) != nil {
		t.Fatal("Root(nil)")
	}
}

func TestWireAndMutators(t *testing.T) {
	t.Parallel()

	err := WithOp(WithField(Validationf("pattern is required"), "pattern"), "search.substring")
	e, ok := As(err)
	if !ok || e.Field() != "pattern" || e.Op() != "search.substring" {
		t.Fatalf("mutators lost metadata: %+v", e)
	}
	w := WireFrom(err)
	if w.Code != ErrorCodeValidation || w.Field != "pattern" || w.Message != "pattern is required" {
		t.Fatalf("WireFrom = %+v", w)
	}
	foreign := stderrs.New("plain")
	if WithField(foreign, "x") != foreign {
		t.Fatal("foreign errors must pass through WithField")
	}
	if fw := WireFrom(foreign); fw.Code != ErrorCodeUnknown || fw.Message != "plain" {
		t.Fatalf("foreign wire = %+v", fw)
	}
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatal("nil receiver")
	}
}
