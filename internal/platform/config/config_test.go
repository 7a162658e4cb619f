package config

import (
	"testing"
	"time"

	kit "needle/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("CORE_").Prefix("API_")
	if got := api.key("PORT"); got != "CORE_API_PORT" {
		t.Fatalf("key() = %q, want CORE_API_PORT", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("CFGT_")
	t.Setenv("CFGT_DBURL", "  postgres://x ")
	if got := c.MustString("DBURL"); got != "postgres://x" {
		t.Fatalf("MustString = %q", got)
	}
	if !c.Has("DBURL") || c.Has("MISSING") {
		t.Fatal("Has mismatch")
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMayAccessors(t *testing.T) {
	c := New().Prefix("CFGT_")
	t.Setenv("CFGT_N", "42")
	t.Setenv("CFGT_BADN", "forty")
	t.Setenv("CFGT_B", "true")
	t.Setenv("CFGT_BADB", "maybe")
	t.Setenv("CFGT_D", "250ms")
	t.Setenv("CFGT_BADD", "soon")

	if c.MayString("MISSING", "def") != "def" {
		t.Fatal("MayString default")
	}
	if c.MayInt("N", 1) != 42 || c.MayInt("BADN", 1) != 1 || c.MayInt("MISSING", 3) != 3 {
		t.Fatal("MayInt mismatch")
	}
	if !c.MayBool("B", false) || !c.MayBool("BADB", true) || c.MayBool("MISSING", false) {
		t.Fatal("MayBool mismatch")
	}
	if c.MayDuration("D", 0) != 250*time.Millisecond || c.MayDuration("BADD", time.Second) != time.Second {
		t.Fatal("MayDuration mismatch")
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("CFGT_")
	t.Setenv("CFGT_FORM", "NFC")
	if got := c.MayEnum("FORM", "none", "none", "nfc"); got != "nfc" {
		t.Fatalf("MayEnum = %q", got)
	}
	if got := c.MayEnum("MISSING", "none", "none", "nfc"); got != "none" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("CFGT_FORM", "nfd")
	kit.MustPanic(t, func() { _ = c.MayEnum("FORM", "none", "none", "nfc") })
}
