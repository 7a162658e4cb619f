package module

import (
	"context"

	"needle/internal/services/api/search/domain"
	searchsvc "needle/internal/services/api/search/service"
)

// adaptSearchPort is the port set search exposes, a domain.ServicePort
type adaptSearchPort struct{ svc *searchsvc.Svc }

// Substring locates the first occurrence of a pattern
func (a adaptSearchPort) Substring(ctx context.Context, in domain.SubstringInput) (domain.SubstringResult, error) {
	return a.svc.Substring(ctx, in)
}

// Subarray finds the longest contiguous run with the given sum
func (a adaptSearchPort) Subarray(ctx context.Context, in domain.SubarrayInput) (domain.SubarrayResult, error) {
	return a.svc.Subarray(ctx, in)
}

// FirstOf finds the leftmost match of any pattern
func (a adaptSearchPort) FirstOf(ctx context.Context, in domain.FirstOfInput) (domain.FirstOfResult, error) {
	return a.svc.FirstOf(ctx, in)
}

// FirstWord returns the text before the first space
func (a adaptSearchPort) FirstWord(ctx context.Context, in domain.FirstWordInput) (domain.FirstWordResult, error) {
	return a.svc.FirstWord(ctx, in)
}

// Runs lists recent recorded runs
func (a adaptSearchPort) Runs(ctx context.Context, in domain.RunsInput) ([]domain.Run, error) {
	return a.svc.Runs(ctx, in)
}
