package httpkit

import (
	"net/http"

	phttp "needle/internal/platform/net/http"
	"needle/internal/platform/net/http/bind"
)

// BodyLimit caps the JSON body accepted by a PostJSON route
type BodyLimit = bind.JSONOptions

// MaxBody returns strict JSON options with a byte cap
func MaxBody(n int64) BodyLimit {
	return BodyLimit{MaxBytes: n, DisallowUnknown: true}
}

// PostJSON mounts a JSON handler under POST, the body is decoded and validated before h runs
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...BodyLimit) {
	phttp.PostJSON(r, path, h, opts...)
}

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}
