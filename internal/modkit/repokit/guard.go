package repokit

import (
	"context"
	"fmt"
	"time"
)

// GuardTimeout bounds a guard whose ctx carries no deadline
const GuardTimeout = 5 * time.Second

type guarder interface {
	Guard(context.Context) error
}

// Guard pings every backend behind st, adding GuardTimeout when ctx has no deadline
func Guard(ctx context.Context, st guarder) error {
	if st == nil {
		return fmt.Errorf("guard: nil store")
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, GuardTimeout)
		defer cancel()
	}
	if err := st.Guard(ctx); err != nil {
		return fmt.Errorf("dependency guard failed: %w", err)
	}
	return nil
}

// MustGuard panics when Guard fails, used on startup paths that cannot run degraded
func MustGuard(ctx context.Context, st guarder) {
	if err := Guard(ctx, st); err != nil {
		panic(err)
	}
}
