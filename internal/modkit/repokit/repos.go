// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"context"

	"needle/internal/platform/store"
)

// Queryer is the minimal read and write surface for SQL repos
type Queryer = store.RowQuerier

// TxRunner can execute a function inside a transaction
type TxRunner = store.TxRunner

// Clickhouse is the columnar seam analytics repos write and read through
type Clickhouse = store.Clickhouse

// Schema is the DDL a repo package needs applied at startup
type Schema = store.Schema

type (
	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row

	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag
)

// Binder binds a domain repo to a Queryer, the pool or an open transaction
type Binder[T any] interface {
	Bind(Queryer) T
}

// MustBind binds q through b, a nil q is a wiring bug and panics
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: bind on nil Queryer")
	}
	return b.Bind(q)
}

// WithTx runs fn inside a transaction using the provided TxRunner
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
