// Package version reports build metadata for the needle binaries
package version

import "runtime/debug"

// set at link time:
//
//	-ldflags "-X needle/internal/core/version.version=v0.1.0 -X needle/internal/core/version.commit=abcd123 -X needle/internal/core/version.date=2026-01-02"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

// BuildInfo is the build metadata served by /meta/version
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go,omitempty"`
}

// Info returns the link-time values, unset commit and date fall back to the vcs stamp go build records
func Info() BuildInfo {
	bi := BuildInfo{Service: "needle-api", Version: version, Commit: commit, Date: date}
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return bi
	}
	bi.Go = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if bi.Commit == "none" && s.Value != "" {
				bi.Commit = s.Value
			}
		case "vcs.time":
			if bi.Date == "unknown" && s.Value != "" {
				bi.Date = s.Value
			}
		}
	}
	return bi
}

// ShortCommit is the commit cut to seven characters
func (b BuildInfo) ShortCommit() string {
	if len(b.Commit) > 7 {
		return b.Commit[:7]
	}
	return b.Commit
}

// String renders "version (commit, date)"
func (b BuildInfo) String() string {
	return b.Version + " (" + b.ShortCommit() + ", " + b.Date + ")"
}
