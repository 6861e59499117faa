package server

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/metrics"
	"github.com/m-mizutani/brewup/pkg/utils/errutil"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	ghSecret types.GitHubWebhookSecret
}

type Option func(*config)

func WithGitHubSecret(secret types.GitHubWebhookSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())

	// ValidatePayload skips the signature check with an empty secret, so the
	// webhook is served only when a secret is configured.
	if cfg.ghSecret != "" {
		r.Route("/webhook", func(r chi.Router) {
			r.Post("/github", func(w http.ResponseWriter, r *http.Request) {
				// Validate and parse the webhook event synchronously
				target, err := validateGitHubEvent(r, cfg.ghSecret)
				if err != nil {
					errutil.HandleError(r.Context(), "fail to validate GitHub event", err)
					safeWrite(w, http.StatusBadRequest, []byte(err.Error()))
					return
				}

				if target == nil {
					safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"no check required"}`))
					return
				}

				// The request context is canceled when the response is sent
				bgCtx := DetachContext(r.Context())
				go runCheck(bgCtx, uc, target)

				safeWrite(w, http.StatusAccepted, []byte(`{"status":"accepted","message":"check enqueued"}`))
			})
		})
	} else {
		logging.Default().Warn("GitHub webhook secret is not set, webhook endpoint is disabled")
	}

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
