package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "needle/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"trace": "trace", "debug": "debug", "info": "info", "warn": "warn", "warning": "warn",
		"error": "error", "fatal": "fatal", "panic": "panic", "": "info", " junk ": "info",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Fatalf("parseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInit_Named_C(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:        "debug",
		Format:       "console",
		Service:      "needle-test",
		Writer:       &buf,
		SampleEvery:  2,
		StaticFields: map[string]string{"build": "test"},
	})

	rv := Get().Sample(&zerolog.BasicSampler{N: 1})
	rv.Info().Msg("root-msg")

	nv := Named("search").Sample(&zerolog.BasicSampler{N: 1})
	nv.Info().Msg("named-msg")

	ctx := WithRun(WithRequest(context.Background(), "req-123"), "run-9")
	cv := C(ctx).Sample(&zerolog.BasicSampler{N: 1})
	cv.Info().Msg("ctx-msg")

	out := buf.String()
	for _, want := range []string{"root-msg", "named-msg", "ctx-msg", "search", "req-123", "run-9", "needle-test", "build="} {
		kit.MustContain(t, out, want)
	}
}

func TestWithRequest_EmptyKeepsContext(t *testing.T) {
	ctx := context.Background()
	if WithRequest(ctx, "") != ctx || WithRun(ctx, "") != ctx {
		t.Fatal("empty ids must not wrap the context")
	}
	if RequestIDFrom(ctx) != "" || RequestIDFrom(WithRequest(ctx, "r-9")) != "r-9" {
		t.Fatal("RequestIDFrom mismatch")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "svc")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" || opt.Service != "svc" {
		t.Fatalf("FromEnv mismatch: %+v", opt)
	}
	if !opt.WithCaller || opt.SampleEvery != 5 {
		t.Fatalf("FromEnv caller/sample mismatch: %+v", opt)
	}
	if !strings.EqualFold(parseLevel(opt.Level).String(), "warn") {
		t.Fatal("level round trip")
	}
}
