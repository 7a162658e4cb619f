package ch

import (
	"os"
	"runtime"
	"strings"

	"needle/internal/core/version"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo returns a ClientInfo describing this process and role
// name is the product (needle), role the binary role (api, cli)
func BuildClientInfo(name, role string) clickhouse.ClientInfo {
	host, _ := os.Hostname()
	bi := version.Info()
	gover := runtime.Version()

	if strings.TrimSpace(name) == "" {
		name = "needle"
	}

	type kv = struct{ Name, Version string }

	products := []kv{
		{Name: safe(name), Version: safe(bi.Version)},
		{Name: "role", Version: safe(role)},
		{Name: "go", Version: safe(gover)},
		{Name: "commit", Version: safe(bi.ShortCommit())},
		{Name: "host", Version: safe(host)},
	}

	return clickhouse.ClientInfo{Products: products}
}

func safe(s string) string { return strings.TrimSpace(s) }
