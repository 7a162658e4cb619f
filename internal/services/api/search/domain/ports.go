package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Substring(ctx context.Context, in SubstringInput) (SubstringResult, error)
	Subarray(ctx context.Context, in SubarrayInput) (SubarrayResult, error)
	FirstOf(ctx context.Context, in FirstOfInput) (FirstOfResult, error)
	FirstWord(ctx context.Context, in FirstWordInput) (FirstWordResult, error)
	Runs(ctx context.Context, in RunsInput) ([]Run, error)
}

// Recorder persists a finished run
type Recorder interface {
	Record(ctx context.Context, run Run) error
}

// History lists recorded runs, newest first, kind empty means all kinds
type History interface {
	Recent(ctx context.Context, kind string, limit int) ([]Run, error)
}
