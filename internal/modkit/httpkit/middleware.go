package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"baseconv/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack; zero values pick the defaults
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration // default 30s
	SlowRequest time.Duration // default 500ms
}

// CommonStack returns the baseline middleware for the versioned API
// request id comes first so every later layer can log it; the heartbeat lives on the root router
func CommonStack(opt StackOptions) []func(http.Handler) http.Handler {
	if opt.Timeout <= 0 {
		opt.Timeout = 30 * time.Second
	}
	if opt.SlowRequest <= 0 {
		opt.SlowRequest = 500 * time.Millisecond
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: opt.SlowRequest}),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: opt.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(opt.Timeout),
	}
}
