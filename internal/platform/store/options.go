package store

import (
	"errors"

	"needle/internal/platform/logger"
)

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger used by subclients
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithPG injects a ready sql seam, Open then skips dialing postgres
func WithPG(tx TxRunner) Option {
	return func(s *Store) error {
		if tx == nil {
			return errors.New("store: nil pg seam")
		}
		s.PG = tx
		return nil
	}
}

// WithCH injects a ready clickhouse seam, Open then skips dialing clickhouse
func WithCH(c Clickhouse) Option {
	return func(s *Store) error {
		if c == nil {
			return errors.New("store: nil clickhouse seam")
		}
		s.CH = c
		return nil
	}
}
