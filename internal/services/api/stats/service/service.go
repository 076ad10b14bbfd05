// Package service contains stats workflows
package service

import (
	"context"
	"time"

	perr "baseconv/internal/platform/errors"
	"baseconv/internal/services/api/stats/domain"
	"baseconv/internal/services/api/stats/repo"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
	domain.EventSink
}

// Svc implements the stats service
// Repo is nil when clickhouse is disabled; reads then fail as unavailable
type Svc struct {
	Repo repo.Repo
}

// New constructs a stats service over an optional repo
func New(r repo.Repo) *Svc { return &Svc{Repo: r} }

const dayLayout = "2006-01-02"

// window turns an inclusive day range into a half open [start, end) interval
func window(tr domain.TimeRange) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dayLayout, tr.Start, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, perr.WithField(perr.Validationf("range start must be YYYY-MM-DD"), "range.start")
	}
	end, err := time.ParseInLocation(dayLayout, tr.End, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, perr.WithField(perr.Validationf("range end must be YYYY-MM-DD"), "range.end")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, perr.WithField(perr.Validationf("range end is before start"), "range.end")
	}
	return start, end.AddDate(0, 0, 1), nil
}

func (s *Svc) ready() error {
	if s.Repo == nil {
		return perr.Unavailablef("usage stats are disabled")
	}
	return nil
}

// Pairs returns conversion and failure counts per (from, to) pair
func (s *Svc) Pairs(ctx context.Context, in domain.PairsInput) ([]domain.PairRow, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	start, end, err := window(in.Range)
	if err != nil {
		return nil, err
	}
	rows, err := s.Repo.Pairs(ctx, start, end, in.From, in.To)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "stats pairs query failed")
	}
	out := make([]domain.PairRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.PairRow{
			From:        int(r.From),
			To:          int(r.To),
			Conversions: int64(r.Conversions),
			Failures:    int64(r.Failures),
		})
	}
	return out, nil
}

// Reasons returns failure counts by reason
func (s *Svc) Reasons(ctx context.Context, in domain.ReasonsInput) ([]domain.ReasonRow, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	start, end, err := window(in.Range)
	if err != nil {
		return nil, err
	}
	rows, err := s.Repo.Reasons(ctx, start, end)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "stats reasons query failed")
	}
	out := make([]domain.ReasonRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ReasonRow{Reason: r.Reason, Failures: int64(r.Failures)})
	}
	return out, nil
}

// Record appends conversion attempts to the usage stream
func (s *Svc) Record(ctx context.Context, events ...domain.Event) error {
	if err := s.ready(); err != nil {
		return err
	}
	rows := make([]repo.EventRow, 0, len(events))
	for _, e := range events {
		ok := uint8(0)
		if e.OK {
			ok = 1
		}
		rows = append(rows, repo.EventRow{
			TS:     e.TS.UTC(),
			ID:     e.ID,
			From:   clamp32(e.From),
			To:     clamp32(e.To),
			OK:     ok,
			Reason: e.Reason,
			Digits: uint32(max(e.Digits, 0)),
		})
	}
	return s.Repo.Insert(ctx, rows)
}

// clamp32 keeps absurd client bases inside the column type
func clamp32(v int) int32 {
	const lo, hi = -1 << 31, 1<<31 - 1
	return int32(min(max(v, lo), hi))
}
