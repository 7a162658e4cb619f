package httpkit

import (
	"net/http"
	"strings"
	"time"

	"needle/internal/platform/config"
	"needle/internal/platform/net/middleware"
)

// CommonStack returns the baseline middleware slice for the versioned api
// reads CORS_ORIGINS, REQUEST_TIMEOUT and SLOW_REQUEST off cfg
func CommonStack(cfg config.Conf) []func(http.Handler) http.Handler {
	stack := middleware.Defaults(cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second))
	stack = append(stack,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{
			Slow: cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		}),
		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: splitList(cfg.MayString("CORS_ORIGINS", "*")),
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}),
		middleware.StripSlashes(),
	)
	return stack
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
