// Package service contains stats workflows
package service

import (
	"context"
	"time"

	perr "needle/internal/platform/errors"
	ptime "needle/internal/platform/time"
	"needle/internal/services/api/stats/domain"
	"needle/internal/services/api/stats/repo"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

const defaultSinceHours = 24

// clock is a seam
var clock = time.Now

// Svc implements the stats service
type Svc struct {
	Repo repo.Repo
}

// New constructs a stats service, a nil repo means analytics is disabled
func New(r repo.Repo) *Svc { return &Svc{Repo: r} }

// Summary returns per kind totals over the requested window
func (s *Svc) Summary(ctx context.Context, in domain.SummaryInput) ([]domain.KindSummary, error) {
	if s.Repo == nil {
		return nil, perr.Unavailablef("analytics store is disabled")
	}
	since := ptime.UTC(ptime.Since(clock(), in.SinceHours, defaultSinceHours))
	rows, err := s.Repo.Summary(ctx, since)
	if err != nil {
		return nil, perr.WrapIf(err, perr.ErrorCodeDB, "summary query")
	}
	out := make([]domain.KindSummary, 0, len(rows))
	for _, r := range rows {
		ks := domain.KindSummary{
			Kind:          r.Kind,
			Total:         int64(r.Total),
			Found:         int64(r.Found),
			MeanElapsedUS: r.MeanUS,
		}
		if r.Total > 0 {
			ks.HitRate = float64(r.Found) / float64(r.Total)
		}
		out = append(out, ks)
	}
	return out, nil
}
