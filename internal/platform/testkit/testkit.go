// Package testkit holds the assertions and seam helpers shared by needle tests
package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// inlineLimit is the longest haystack MustContain prints in the failure message
const inlineLimit = 2048

var seamMu sync.Mutex

// MustPanic asserts that fn panics and returns the recovered value
func MustPanic(t *testing.T, fn func()) (rec any) {
	t.Helper()
	defer func() {
		rec = recover()
		if rec == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
	return nil
}

// MustNotPanic asserts that fn returns normally
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain asserts that haystack contains needle
// long haystacks (log captures, doc.json) go to a temp file instead of the message
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	if len(haystack) <= inlineLimit {
		t.Fatalf("expected %q in:\n%s", needle, haystack)
	}
	out := filepath.Join(t.TempDir(), "haystack.txt")
	_ = os.WriteFile(out, []byte(haystack), 0o600)
	t.Fatalf("expected %q, full output written to %s", needle, out)
}

// Swap replaces *target for the rest of the test and restores it on cleanup
// pair with Serial when the target is package state other tests read
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial holds a process-wide lock until the test ends, serializing tests that swap shared seams
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}
