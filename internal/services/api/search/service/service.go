// Package service contains search workflows
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"needle/internal/core/normalize"
	"needle/internal/core/search"
	"needle/internal/platform/config"
	perr "needle/internal/platform/errors"
	"needle/internal/platform/logger"
	str "needle/internal/platform/strings"
	ptime "needle/internal/platform/time"
	"needle/internal/services/api/search/domain"
)

// Service defines the search service contract
type Service interface {
	domain.ServicePort
}

// seams
var (
	clock    = time.Now
	newRunID = uuid.New
)

const (
	defaultMaxTextBytes = 1 << 20
	defaultMaxNumbers   = 5000
	previewRunes        = 64
)

// Limits bounds request sizes
type Limits struct {
	MaxTextBytes int
	MaxNumbers   int
}

// LimitsFromConf reads MAX_TEXT_BYTES and MAX_NUMBERS, non positive values fall back to defaults
func LimitsFromConf(cfg config.Conf) Limits {
	l := Limits{
		MaxTextBytes: cfg.MayInt("MAX_TEXT_BYTES", defaultMaxTextBytes),
		MaxNumbers:   cfg.MayInt("MAX_NUMBERS", defaultMaxNumbers),
	}
	if l.MaxTextBytes <= 0 {
		l.MaxTextBytes = defaultMaxTextBytes
	}
	if l.MaxNumbers <= 0 {
		l.MaxNumbers = defaultMaxNumbers
	}
	return l
}

// Svc implements the search service
type Svc struct {
	limits Limits
	rec    domain.Recorder
	hist   domain.History
}

// New constructs a search service
// rec and hist may be nil, runs are then neither recorded nor listable
func New(limits Limits, rec domain.Recorder, hist domain.History) *Svc {
	if limits.MaxTextBytes <= 0 {
		limits.MaxTextBytes = defaultMaxTextBytes
	}
	if limits.MaxNumbers <= 0 {
		limits.MaxNumbers = defaultMaxNumbers
	}
	return &Svc{limits: limits, rec: rec, hist: hist}
}

// Limits returns the configured request bounds
func (s *Svc) Limits() Limits { return s.limits }

// Substring locates the first byte offset of the pattern in the optionally normalized text
func (s *Svc) Substring(ctx context.Context, in domain.SubstringInput) (domain.SubstringResult, error) {
	if err := s.checkText("text", in.Text); err != nil {
		return domain.SubstringResult{}, err
	}
	if err := s.checkText("pattern", in.Pattern); err != nil {
		return domain.SubstringResult{}, err
	}
	form, err := normalize.ParseForm(in.Normalize)
	if err != nil {
		return domain.SubstringResult{}, perr.WithField(perr.Validationf("%v", err), "normalize")
	}
	text, pattern := normalize.Apply(form, in.Text), normalize.Apply(form, in.Pattern)

	start := clock()
	pos, found := search.LocateSubstring(text, pattern)
	elapsed := clock().Sub(start)

	out := domain.SubstringResult{
		Position:     pos,
		Found:        found,
		Sentinel:     len(text),
		RunePosition: search.RuneOffset(text, pos),
		Length:       len(text),
	}
	out.RunID = s.record(ctx, domain.Run{
		Kind:    domain.KindSubstring,
		Found:   found,
		Elapsed: elapsed,
		Input: fmt.Sprintf("text=%q pattern=%q normalize=%s",
			str.Preview(text, previewRunes), str.Preview(pattern, previewRunes), form),
		Result: fmt.Sprintf("position=%d", pos),
	})
	return out, nil
}

// Subarray finds the longest contiguous run summing to the target, leftmost on ties
func (s *Svc) Subarray(ctx context.Context, in domain.SubarrayInput) (domain.SubarrayResult, error) {
	if n := len(in.Numbers); n > s.limits.MaxNumbers {
		return domain.SubarrayResult{}, perr.WithField(
			perr.InvalidArgf("numbers has %d items, limit is %d", n, s.limits.MaxNumbers), "numbers")
	}
	strategy, err := search.ParseStrategy(in.Strategy)
	if err != nil {
		return domain.SubarrayResult{}, perr.WithField(perr.Validationf("%v", err), "strategy")
	}

	start := clock()
	span, found := search.LocateSubarray(in.Numbers, in.Sum, strategy)
	elapsed := clock().Sub(start)

	n := len(in.Numbers)
	out := domain.SubarrayResult{
		Start:    n,
		Length:   n,
		Found:    found,
		Sentinel: n,
		Slice:    []int{},
	}
	if found {
		out.Start, out.Length = span.Start, span.Length
		out.Slice = append(out.Slice, in.Numbers[span.Start:span.End()]...)
	}
	out.RunID = s.record(ctx, domain.Run{
		Kind:    domain.KindSubarray,
		Found:   found,
		Elapsed: elapsed,
		Input:   fmt.Sprintf("n=%d sum=%d strategy=%s", n, in.Sum, strategy),
		Result:  fmt.Sprintf("start=%d length=%d", out.Start, out.Length),
	})
	return out, nil
}

// FirstOf finds the leftmost match of any pattern, lowest index wins on equal start
func (s *Svc) FirstOf(ctx context.Context, in domain.FirstOfInput) (domain.FirstOfResult, error) {
	if err := s.checkText("text", in.Text); err != nil {
		return domain.FirstOfResult{}, err
	}
	total := 0
	for _, p := range in.Patterns {
		total += len(p)
	}
	if total > s.limits.MaxTextBytes {
		return domain.FirstOfResult{}, perr.WithField(
			perr.InvalidArgf("patterns total %d bytes, limit is %d", total, s.limits.MaxTextBytes), "patterns")
	}

	start := clock()
	pos, idx := search.FindFirstOf(in.Text, in.Patterns)
	elapsed := clock().Sub(start)

	out := domain.FirstOfResult{Position: pos, PatternIndex: idx, Found: idx >= 0}
	if out.Found {
		out.Pattern = in.Patterns[idx]
	}
	out.RunID = s.record(ctx, domain.Run{
		Kind:    domain.KindFirstOf,
		Found:   out.Found,
		Elapsed: elapsed,
		Input:   fmt.Sprintf("text=%q patterns=%d", str.Preview(in.Text, previewRunes), len(in.Patterns)),
		Result:  fmt.Sprintf("position=%d index=%d", pos, idx),
	})
	return out, nil
}

// FirstWord returns the text before the first ASCII space, not recorded
func (s *Svc) FirstWord(_ context.Context, in domain.FirstWordInput) (domain.FirstWordResult, error) {
	if err := s.checkText("text", in.Text); err != nil {
		return domain.FirstWordResult{}, err
	}
	w := search.FirstWord(in.Text)
	return domain.FirstWordResult{Word: w, Length: len(w)}, nil
}

// Runs lists recent recorded runs
func (s *Svc) Runs(ctx context.Context, in domain.RunsInput) ([]domain.Run, error) {
	if s.hist == nil {
		return nil, perr.Unavailablef("run history is disabled")
	}
	limit := in.Limit
	if limit <= 0 {
		limit = domain.RunsLimitDefault
	}
	return s.hist.Recent(ctx, str.Lower(in.Kind), limit)
}

func (s *Svc) checkText(field, v string) error {
	if len(v) > s.limits.MaxTextBytes {
		return perr.WithField(
			perr.InvalidArgf("%s is %d bytes, limit is %d", field, len(v), s.limits.MaxTextBytes), field)
	}
	return nil
}

// record stamps run with an id and hands it to the recorder
// failures are logged and swallowed, the search result stands
func (s *Svc) record(ctx context.Context, run domain.Run) string {
	run.ID = newRunID()
	run.CreatedAt = ptime.UTC(clock())
	run.ElapsedUS = ptime.Micros(run.Elapsed)
	id := run.ID.String()
	ctx = logger.WithRun(ctx, id)

	if s.rec != nil {
		if err := s.rec.Record(ctx, run); err != nil {
			logger.C(ctx).Warn().Err(err).Str("kind", run.Kind).Msg("search run not recorded")
		}
	}
	logger.C(ctx).Debug().
		Str("kind", run.Kind).
		Bool("found", run.Found).
		Int64("elapsed_us", run.ElapsedUS).
		Str("result", run.Result).
		Msg("search run")
	return id
}
