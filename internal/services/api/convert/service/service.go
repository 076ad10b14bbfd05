// Package service contains conversion workflows
package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"baseconv/internal/core/radix"
	"baseconv/internal/modkit/repokit"
	perr "baseconv/internal/platform/errors"
	"baseconv/internal/platform/logger"
	"baseconv/internal/services/api/convert/domain"
	"baseconv/internal/services/api/convert/repo"
	statsdom "baseconv/internal/services/api/stats/domain"

	"github.com/google/uuid"
)

// Defaults for Options
const (
	DefaultMaxInput      = 4096
	DefaultBatchMax      = 256
	DefaultLedgerTimeout = 2 * time.Second
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Options control service behavior
type Options struct {
	// MaxInput caps input length in characters
	MaxInput int
	// BatchMax caps items per batch
	BatchMax int
	// Record turns ledger and usage stream writes on
	Record bool
	// LedgerTimeout is the statement timeout for ledger writes
	LedgerTimeout time.Duration

	// Events is optional; nil skips the usage stream
	Events statsdom.EventSink
}

// Svc implements the service port
// db is nil when postgres is disabled
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	opt    Options

	newID func() uuid.UUID
	now   func() time.Time
}

// New constructs the service; db may be nil
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if binder == nil {
		panic("convert.Service requires a non nil Repo binder")
	}
	if opt.MaxInput <= 0 {
		opt.MaxInput = DefaultMaxInput
	}
	if opt.BatchMax <= 0 {
		opt.BatchMax = DefaultBatchMax
	}
	if opt.LedgerTimeout <= 0 {
		opt.LedgerTimeout = DefaultLedgerTimeout
	}
	if db != nil {
		db = repokit.WithBeginHooks(db, repokit.StatementTimeout(opt.LedgerTimeout))
	}
	return &Svc{db: db, binder: binder, opt: opt, newID: newID, now: time.Now}
}

// newID prefers time ordered v7 ids
func newID() uuid.UUID {
	if id, err := uuid.NewV7(); err == nil {
		return id
	}
	return uuid.New()
}

// attempt is one conversion with its outcome
type attempt struct {
	id     uuid.UUID
	at     time.Time
	in     domain.ConvertInput
	output string
	err    error
}

func (a attempt) negative() bool { return strings.HasPrefix(a.output, "-") }
func (a attempt) digits() int    { return len(strings.TrimPrefix(a.output, "-")) }

func (s *Svc) run(in domain.ConvertInput) attempt {
	a := attempt{id: s.newID(), at: s.now(), in: in}
	out, err := radix.Convert(in.Input, radix.Radix(in.From), radix.Radix(in.To))
	if err != nil {
		a.err = domain.MapError(err)
		return a
	}
	a.output = out
	return a
}

func (s *Svc) checkInput(input string) error {
	if n := utf8.RuneCountInString(input); n > s.opt.MaxInput {
		err := perr.Validationf("input must be at most %d characters, got %d", s.opt.MaxInput, n)
		return perr.WithReason(perr.WithField(err, "input"), domain.ReasonInputTooLong)
	}
	return nil
}

// Convert converts one value and records the attempt
func (s *Svc) Convert(ctx context.Context, in domain.ConvertInput) (domain.ConvertResult, error) {
	if err := s.checkInput(in.Input); err != nil {
		return domain.ConvertResult{}, err
	}
	a := s.run(in)
	ctx = logger.WithConversion(ctx, a.id.String())
	s.record(ctx, a)

	if a.err != nil {
		logger.C(ctx).Debug().Err(a.err).Int("from", in.From).Int("to", in.To).Msg("conversion rejected")
		return domain.ConvertResult{}, a.err
	}
	return domain.ConvertResult{
		ID:       a.id.String(),
		Input:    in.Input,
		From:     in.From,
		To:       in.To,
		Output:   a.output,
		Negative: a.negative(),
		Digits:   a.digits(),
	}, nil
}

// ConvertAll renders one value in every supported base; it is not recorded
func (s *Svc) ConvertAll(ctx context.Context, in domain.AllInput) (domain.AllResult, error) {
	if err := s.checkInput(in.Input); err != nil {
		return domain.AllResult{}, err
	}
	outs, err := radix.ConvertAll(in.Input, radix.Radix(in.From))
	if err != nil {
		err = domain.MapError(err)
		logger.C(ctx).Debug().Err(err).Int("from", in.From).Msg("conversion rejected")
		return domain.AllResult{}, err
	}
	res := domain.AllResult{Input: in.Input, From: in.From, Outputs: make(map[string]string, len(outs))}
	for b, v := range outs {
		res.Outputs[b.String()] = v
	}
	return res, nil
}

// Batch converts every item independently; a failed item never fails the batch
func (s *Svc) Batch(ctx context.Context, in domain.BatchInput) (domain.BatchResult, error) {
	n := len(in.Items)
	if n == 0 {
		return domain.BatchResult{}, perr.WithField(perr.Validationf("items must hold at least one conversion"), "items")
	}
	if n > s.opt.BatchMax {
		err := perr.TooManyf("batch holds %d items, limit is %d", n, s.opt.BatchMax)
		return domain.BatchResult{}, perr.WithReason(perr.WithField(err, "items"), domain.ReasonBatchTooBig)
	}

	out := domain.BatchResult{Items: make([]domain.BatchItem, n)}
	attempts := make([]attempt, 0, n)
	for i, it := range in.Items {
		item := domain.BatchItem{Index: i, Input: it.Input, From: it.From, To: it.To}
		if err := s.checkInput(it.Input); err != nil {
			item.Error = domain.ItemErrorOf(err)
			out.Items[i] = item
			out.Failed++
			continue
		}
		a := s.run(it)
		attempts = append(attempts, a)
		item.ID = a.id.String()
		if a.err != nil {
			item.Error = domain.ItemErrorOf(a.err)
			out.Failed++
		} else {
			item.Output = a.output
			item.Negative = a.negative()
			item.Digits = a.digits()
			out.Succeeded++
		}
		out.Items[i] = item
	}

	s.record(ctx, attempts...)
	logger.C(ctx).Debug().Int("items", n).Int("failed", out.Failed).Msg("batch converted")
	return out, nil
}

// History lists recent ledger entries, newest first
func (s *Svc) History(ctx context.Context, in domain.HistoryInput) ([]domain.HistoryEntry, error) {
	if s.db == nil {
		return nil, perr.Unavailablef("conversion ledger is disabled")
	}
	rows, err := s.binder.Bind(s.db).Recent(ctx, in.EffectiveLimit())
	if err != nil {
		return nil, err
	}
	out := make([]domain.HistoryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.HistoryEntry{
			ID:        r.ID,
			Input:     r.Input,
			From:      r.From,
			To:        r.To,
			Output:    r.Output,
			Reason:    r.Reason,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

// record writes attempts to the ledger and the usage stream
// failures are logged and swallowed
func (s *Svc) record(ctx context.Context, attempts ...attempt) {
	if !s.opt.Record || len(attempts) == 0 {
		return
	}
	log := logger.C(ctx)

	if s.db != nil {
		err := s.db.Tx(ctx, func(q repokit.Queryer) error {
			r := s.binder.Bind(q)
			for _, a := range attempts {
				if err := r.Insert(ctx, repo.Entry{
					ID:     a.id.String(),
					Input:  a.in.Input,
					From:   a.in.From,
					To:     a.in.To,
					Output: a.output,
					Reason: domain.Reason(a.err),
				}); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			log.Warn().Err(err).Int("attempts", len(attempts)).Msg("ledger write failed")
		}
	}

	if s.opt.Events != nil {
		evs := make([]statsdom.Event, 0, len(attempts))
		for _, a := range attempts {
			evs = append(evs, statsdom.Event{
				TS:     a.at,
				ID:     a.id,
				From:   a.in.From,
				To:     a.in.To,
				OK:     a.err == nil,
				Reason: domain.Reason(a.err),
				Digits: a.digits(),
			})
		}
		if err := s.opt.Events.Record(ctx, evs...); err != nil {
			log.Warn().Err(err).Int("attempts", len(attempts)).Msg("usage event write failed")
		}
	}
}
