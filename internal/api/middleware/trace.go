package middleware

import (
	"log/slog"
	"net/http"

	"github.com/PrasadBhosale419/TaskManagementAPI/internal/api/shared"
	"github.com/PrasadBhosale419/TaskManagementAPI/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context and attaches
// a trace-scoped logger for downstream handlers.
// This middleware should be applied early in the middleware chain to ensure
// that all subsequent handlers have access to the trace ID.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Add a trace ID to the context
		ctx := shared.SetTraceID(r.Context())

		// Get the trace ID for logging
		traceID := shared.GetTraceID(ctx)

		// Add trace ID to the logger and carry it in the context so
		// stores and services log with the same correlation ID
		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithContext(ctx, log)

		// Log the incoming request with trace ID
		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		// Continue with the updated context
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
