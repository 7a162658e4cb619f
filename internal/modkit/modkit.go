package modkit

import (
	"net/http"

	"needle/internal/modkit/httpkit"
	"needle/internal/modkit/module"
	str "needle/internal/platform/strings"
)

// Module is the one module contract, defined in package module so ports code avoids a cycle
type Module = module.Module

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module

// Base carries the routing state every module shares
// modules embed it and only supply their register func and ports
type Base struct {
	name      string
	prefix    string
	mws       []func(http.Handler) http.Handler
	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
	ports     any
}

// NewBase builds a Base from options; register mounts the module's own routes
// and runs before any external register hook passed via WithRegister
func NewBase(b Built, register func(httpkit.Router), ports any) Base {
	external := b.Register
	if b.Ports != nil {
		ports = b.Ports
	}
	return Base{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		ports:     ports,
		register: func(r httpkit.Router) {
			if register != nil {
				register(r)
			}
			if external != nil {
				external(r)
			}
		},
	}
}

// MountRoutes mounts the module routes under its prefix with its middlewares
func (m *Base) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		m.register(rr)
	})
}

// Name returns the module name
func (m *Base) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Base) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports returns the module ports
func (m *Base) Ports() any { return m.ports }

// Middlewares returns the module middlewares
func (m *Base) Middlewares() []func(http.Handler) http.Handler { return m.mws }
