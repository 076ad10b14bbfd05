package store

import (
	"errors"

	"baseconv/internal/platform/logger"
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

// WithPG installs an already open sql seam
// an enabled PG config in Open replaces it
func WithPG(pg TxRunner) Option {
	return func(s *Store) error {
		if pg == nil {
			return errors.New("store: nil pg seam")
		}
		s.PG = pg
		return nil
	}
}

// WithClickhouse installs an already open columnar seam
// an enabled CH config in Open replaces it
func WithClickhouse(ch Clickhouse) Option {
	return func(s *Store) error {
		if ch == nil {
			return errors.New("store: nil clickhouse seam")
		}
		s.CH = ch
		return nil
	}
}
