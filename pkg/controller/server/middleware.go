package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
)

// preProcess attaches a request scoped logger. GitHub deliveries are logged
// with their delivery ID so a redelivery can be matched to its first attempt.
func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := withRequestID(r.Context(), r.Header.Get("X-GitHub-Delivery"))
		reqID, ctx := logging.CtxRequestID(ctx)

		logger := logging.Default().With(slog.Any("request_id", reqID))
		if event := r.Header.Get("X-GitHub-Event"); event != "" {
			logger = logger.With(slog.String("github_event", event))
		}
		ctx = logging.With(ctx, logger)

		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		requestedAt := time.Now()
		next.ServeHTTP(sw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", sw.code),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

func withRequestID(ctx context.Context, deliveryID string) context.Context {
	if deliveryID == "" {
		return ctx
	}
	return logging.CtxWithRequestID(ctx, types.RequestID(deliveryID))
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (x *statusWriter) WriteHeader(code int) {
	x.code = code
	x.ResponseWriter.WriteHeader(code)
}
