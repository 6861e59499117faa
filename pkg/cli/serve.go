package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/brewup/pkg/controller/server"
	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/usecase"
	"github.com/m-mizutani/brewup/pkg/utils/errutil"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr        string
		interval    time.Duration
		concurrency int64
		rt          runtimeConfig
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("BREWUP_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "interval",
			Usage:       "Interval of checking all enabled repositories, 0 disables periodic check",
			Value:       time.Hour,
			Sources:     cli.EnvVars("BREWUP_INTERVAL"),
			Destination: &interval,
		},
		&cli.Int64Flag{
			Name:        "concurrency",
			Usage:       "Number of repositories checked at once in periodic check",
			Value:       usecase.DefaultConcurrency,
			Sources:     cli.EnvVars("BREWUP_CONCURRENCY"),
			Destination: &concurrency,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode, receives GitHub webhook and checks repositories periodically",
		Flags:   slice.Flatten(serveFlags, rt.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Duration("Interval", interval),
				slog.Any("Config", &rt),
			)

			uc, closer, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer closer()

			s := server.New(uc, server.WithGitHubSecret(rt.github.WebhookSecret()))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			loopCtx, stopLoop := context.WithCancel(ctx)
			defer stopLoop()
			if interval > 0 {
				go checkPeriodically(loopCtx, uc, interval, int(concurrency))
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)
				stopLoop()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}

// checkPeriodically runs CheckAll on every tick until ctx is canceled. A run
// is not started while the previous one is in progress.
func checkPeriodically(ctx context.Context, uc interfaces.UseCase, interval time.Duration, concurrency int) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			results, err := uc.CheckAll(ctx, model.CheckOptions{Concurrency: concurrency})
			if err != nil {
				errutil.HandleError(ctx, "periodic check failed", err)
			}
			logging.From(ctx).Info("periodic check done", slog.Int("checked", len(results)))
		}
	}
}
