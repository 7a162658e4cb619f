// Package module holds the contract every API module satisfies
package module

import (
	phttp "needle/internal/platform/net/http"
)

// Module is what api.Mount needs from a module, modkit.Base implements it
// this lives apart from modkit so ports packages can import it without a cycle
type Module interface {
	Name() string
	Prefix() string
	MountRoutes(r phttp.Router)
	Ports() any
}
