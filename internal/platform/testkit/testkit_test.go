package testkit

import (
	"sync"
	"testing"
	"time"
)

var clockSeam = func() string { return "real" }

func TestMustPanic_ReturnsValue(t *testing.T) {
	t.Parallel()

	got := MustPanic(t, func() { panic("search: nil recorder") })
	if got != "search: nil recorder" {
		t.Fatalf("recovered %v", got)
	}
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	MustContain(t, `{"level":"warn","message":"record run failed"}`, "record run failed")
}

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	Serial(t)

	t.Run("swapped", func(t *testing.T) {
		Swap(t, &clockSeam, func() string { return "fake" })
		if clockSeam() != "fake" {
			t.Fatal("swap did not take effect")
		}
	})
	if clockSeam() != "real" {
		t.Fatal("swap not restored")
	}
}

func TestSerial_NoInterleaving(t *testing.T) {
	t.Parallel()

	var (
		mu  sync.Mutex
		seq []string
	)
	mark := func(s string) {
		mu.Lock()
		seq = append(seq, s)
		mu.Unlock()
	}

	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"a", "b"} {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				Serial(t)
				mark(name + "+")
				time.Sleep(20 * time.Millisecond)
				mark(name + "-")
			})
		}
	})

	if len(seq) != 4 || seq[0][0] != seq[1][0] || seq[2][0] != seq[3][0] {
		t.Fatalf("interleaved: %v", seq)
	}
}
