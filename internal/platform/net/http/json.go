package http

import (
	"net/http"

	"needle/internal/platform/net/http/bind"
)

// reply maps a handler result to a Response, a returned Response passes through
func reply(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}

// JSONHandler decodes and validates the body into T before fn runs
func JSONHandler[T any](fn func(*http.Request, T) (any, error), opts ...bind.JSONOptions) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r, opts...)
		if err != nil {
			return Error(err)
		}
		return reply(fn(r, in))
	})
}

// NoBodyHandler runs fn without reading the request body
func NoBodyHandler(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return reply(fn(r)) })
}

// GetJSON mounts fn for GET
func GetJSON(r Router, path string, fn func(*http.Request) (any, error)) {
	r.Get(path, NoBodyHandler(fn))
}

// PostJSON mounts fn for POST with a bound JSON body
func PostJSON[T any](r Router, path string, fn func(*http.Request, T) (any, error), opts ...bind.JSONOptions) {
	r.Post(path, JSONHandler(fn, opts...))
}
