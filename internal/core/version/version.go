// Package version provides information about the build version of the binaries.
package version

import "runtime/debug"

// BuildInfo holds version information about the build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. The variables below are set at build time:
//
//	-ldflags "-X 'baseconv/internal/core/version.version=v0.1.0'
//	-X 'baseconv/internal/core/version.commit=abcd' -X 'baseconv/internal/core/version.date=2026-10-18'"
//
// Without ldflags the commit falls back to the vcs stamp Go embeds.
func Info() BuildInfo {
	c := commit
	if c == "none" {
		c = vcsRevision(readBuildInfo)
	}
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  c,
		Date:    date,
	}
}

var (
	service = "baseconv"
	version = "dev"
	commit  = "none"
	date    = "unknown"

	readBuildInfo = debug.ReadBuildInfo
)

func vcsRevision(read func() (*debug.BuildInfo, bool)) string {
	bi, ok := read()
	if !ok || bi == nil {
		return "none"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "none"
}
