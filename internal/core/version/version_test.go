package version

import (
	"runtime/debug"
	"testing"

	kit "needle/internal/platform/testkit"
)

func TestInfo_VCSFallback(t *testing.T) {
	kit.Serial(t)

	kit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			GoVersion: "go1.25.0",
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			},
		}, true
	})

	bi := Info()
	if bi.Service != "needle-api" || bi.Version != "dev" || bi.Go != "go1.25.0" {
		t.Fatalf("info %+v", bi)
	}
	if bi.Commit != "0123456789abcdef" || bi.Date != "2026-10-01T12:00:00Z" {
		t.Fatalf("vcs fallback not applied: %+v", bi)
	}
	if got := bi.String(); got != "dev (0123456, 2026-10-01T12:00:00Z)" {
		t.Fatalf("String = %q", got)
	}
}

func TestInfo_LinkTimeWins(t *testing.T) {
	kit.Serial(t)

	kit.Swap(t, &commit, "abc")
	kit.Swap(t, &date, "2026-01-02")
	kit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffff"}}}, true
	})

	bi := Info()
	if bi.Commit != "abc" || bi.Date != "2026-01-02" || bi.ShortCommit() != "abc" {
		t.Fatalf("info %+v", bi)
	}
}

func TestInfo_NoBuildInfo(t *testing.T) {
	kit.Serial(t)

	kit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) { return nil, false })
	if bi := Info(); bi.Commit != "none" || bi.Go != "" {
		t.Fatalf("info %+v", bi)
	}
}
