package repokit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	kit "needle/internal/platform/testkit"
)

type fakeTx struct {
	execs []string
	fail  string
}

type fakeTag struct{}

func (fakeTag) String() string      { return "SET" }
func (fakeTag) RowsAffected() int64 { return 0 }

func (f *fakeTx) Exec(_ context.Context, sql string, _ ...any) (CommandTag, error) {
	f.execs = append(f.execs, sql)
	if f.fail != "" && strings.Contains(sql, f.fail) {
		return fakeTag{}, errors.New("denied")
	}
	return fakeTag{}, nil
}

func (f *fakeTx) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }

func (f *fakeTx) QueryRow(context.Context, string, ...any) Row { return nil }

func (f *fakeTx) Tx(_ context.Context, fn func(Queryer) error) error { return fn(f) }

type nameBinder struct{}

func (nameBinder) Bind(q Queryer) string {
	if _, ok := q.(*fakeTx); ok {
		return "tx"
	}
	return "other"
}

func TestMustBind(t *testing.T) {
	t.Parallel()

	kit.MustPanic(t, func() { MustBind[string](nameBinder{}, nil) })
	if got := MustBind[string](nameBinder{}, &fakeTx{}); got != "tx" {
		t.Fatalf("MustBind = %q", got)
	}
}

func TestBeginHooks_StatementTimeout(t *testing.T) {
	t.Parallel()

	inner := &fakeTx{}
	tx := WithBeginHooks(inner, StatementTimeout(1500*time.Millisecond), StatementTimeout(0))
	err := tx.Tx(context.Background(), func(q Queryer) error {
		_, err := q.Exec(context.Background(), "INSERT INTO search_runs")
		return err
	})
	if err != nil {
		t.Fatalf("Tx: %v", err)
	}
	want := []string{"SET LOCAL statement_timeout = 1500", "INSERT INTO search_runs"}
	if len(inner.execs) != len(want) || inner.execs[0] != want[0] || inner.execs[1] != want[1] {
		t.Fatalf("execs = %v", inner.execs)
	}
}

func TestBeginHooks_FailureSkipsFn(t *testing.T) {
	t.Parallel()

	inner := &fakeTx{fail: "statement_timeout"}
	called := false
	err := WithTx(context.Background(), WithBeginHooks(inner, StatementTimeout(time.Second)), func(Queryer) error {
		called = true
		return nil
	})
	if err == nil || called {
		t.Fatalf("hook failure must abort: err=%v called=%v", err, called)
	}

	// a failing custom hook stops the chain before later hooks run
	inner = &fakeTx{}
	failing := func(context.Context, Queryer) error { return errors.New("hook") }
	err = WithTx(context.Background(), WithBeginHooks(inner, failing, StatementTimeout(time.Second)), func(Queryer) error {
		called = true
		return nil
	})
	if err == nil || err.Error() != "hook" || called || len(inner.execs) != 0 {
		t.Fatalf("chain not stopped: err=%v called=%v execs=%v", err, called, inner.execs)
	}
}

type fakeGuard struct {
	ctx context.Context
	err error
}

func (f *fakeGuard) Guard(ctx context.Context) error { f.ctx = ctx; return f.err }

func TestGuard(t *testing.T) {
	t.Parallel()

	if err := Guard(context.Background(), nil); err == nil {
		t.Fatal("nil store must fail")
	}

	fg := &fakeGuard{}
	if err := Guard(context.Background(), fg); err != nil {
		t.Fatalf("Guard: %v", err)
	}
	if _, ok := fg.ctx.Deadline(); !ok {
		t.Fatal("Guard must add a default deadline")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	want, _ := ctx.Deadline()
	_ = Guard(ctx, fg)
	if got, _ := fg.ctx.Deadline(); !got.Equal(want) {
		t.Fatalf("caller deadline replaced: %v != %v", got, want)
	}

	err := Guard(context.Background(), &fakeGuard{err: errors.New("pg: down")})
	if err == nil || !strings.Contains(err.Error(), "pg: down") {
		t.Fatalf("err = %v", err)
	}
}

func TestMustGuard(t *testing.T) {
	t.Parallel()

	kit.MustPanic(t, func() { MustGuard(context.Background(), &fakeGuard{err: errors.New("boom")}) })
	kit.MustNotPanic(t, func() { MustGuard(context.Background(), &fakeGuard{}) })
}
