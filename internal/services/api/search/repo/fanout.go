package repo

import (
	"context"
	"errors"

	"needle/internal/services/api/search/domain"
)

// Fanout hands each run to every recorder, one failing does not stop the rest
type Fanout []domain.Recorder

// Record calls every recorder and joins their errors
func (f Fanout) Record(ctx context.Context, run domain.Run) error {
	var errs []error
	for _, r := range f {
		if err := r.Record(ctx, run); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recorders builds the recorder set for the enabled backends, nil when none are
func Recorders(recs ...domain.Recorder) domain.Recorder {
	var f Fanout
	for _, r := range recs {
		if r != nil {
			f = append(f, r)
		}
	}
	switch len(f) {
	case 0:
		return nil
	case 1:
		return f[0]
	}
	return f
}
