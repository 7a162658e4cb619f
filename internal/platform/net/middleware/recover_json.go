package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "needle/internal/platform/errors"
	"needle/internal/platform/logger"
	pnet "needle/internal/platform/net"
	phttp "needle/internal/platform/net/http"
)

// RecoverJSON converts panics into the JSON error envelope and logs the stack with request id
// http.ErrAbortHandler is re-panicked so the server can abort the connection
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}

			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if reqID := pnet.RequestID(r.Context()); reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			phttp.RespondError(w, r, perr.PanicErrf("panic recovered"))
		}()
		next.ServeHTTP(w, r)
	})
}
