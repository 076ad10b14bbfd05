package ch

import (
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo describes this process to the server
// name defaults to "baseconv"; tag is usually the role, e.g. "api"
func BuildClientInfo(name, tag string) clickhouse.ClientInfo {
	if strings.TrimSpace(name) == "" {
		name = "baseconv"
	}
	host, _ := os.Hostname()

	type product = struct{ Name, Version string }
	return clickhouse.ClientInfo{Products: []product{
		{Name: strings.TrimSpace(name), Version: strings.TrimSpace(tag)},
		{Name: "go", Version: runtime.Version()},
		{Name: "commit", Version: shortRevision()},
		{Name: "host", Version: host},
	}}
}

func shortRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return "unknown"
}
