package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger puts a request-scoped logger into the context. Every request
// gets a minted request_id; report requests additionally carry their
// mode and dimension selection so log lines identify the window being
// served.
func Logger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logCtx := logger.With().
				Str("request_id", uuid.NewString()).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("remote_ip", req.RemoteAddr)

			params := req.URL.Query()
			for _, name := range []string{"mode", "dimension"} {
				if v := params.Get(name); v != "" {
					logCtx = logCtx.Str(name, v)
				}
			}

			reqLogger := logCtx.Logger()
			ctx := reqLogger.WithContext(req.Context())
			req = req.WithContext(ctx)

			next.ServeHTTP(w, req)
		})
	}
}
