package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/brewup/pkg/cli/config"
	"github.com/m-mizutani/brewup/pkg/infra"
	"github.com/m-mizutani/brewup/pkg/infra/fetcher"
	"github.com/m-mizutani/brewup/pkg/resolver"
	"github.com/m-mizutani/brewup/pkg/usecase"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/brewup/pkg/workflow"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// runtimeConfig bundles configurations shared by commands that build a use case.
type runtimeConfig struct {
	archiveTimeout time.Duration
	chunkSize      int64

	github   config.GitHub
	git      config.Git
	store    config.Store
	bigQuery config.BigQuery
	slack    config.Slack
	sentry   config.Sentry
}

func (x *runtimeConfig) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.DurationFlag{
			Name:        "archive-timeout",
			Usage:       "Timeout of downloading a release archive",
			Value:       fetcher.DefaultTimeout,
			Sources:     cli.EnvVars("BREWUP_ARCHIVE_TIMEOUT"),
			Destination: &x.archiveTimeout,
		},
		&cli.Int64Flag{
			Name:        "chunk-size",
			Usage:       "Number of commit date lookups in flight at once",
			Value:       resolver.DefaultChunkSize,
			Sources:     cli.EnvVars("BREWUP_CHUNK_SIZE"),
			Destination: &x.chunkSize,
		},
	}

	return slice.Flatten(
		flags,
		x.github.Flags(),
		x.git.Flags(),
		x.store.Flags(),
		x.bigQuery.Flags(),
		x.slack.Flags(),
		x.sentry.Flags(),
	)
}

func (x *runtimeConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("archiveTimeout", x.archiveTimeout),
		slog.Int64("chunkSize", x.chunkSize),
		slog.Any("github", &x.github),
		slog.Any("git", &x.git),
		slog.Any("store", &x.store),
		slog.Any("bigQuery", &x.bigQuery),
		slog.Any("slack", &x.slack),
		slog.Any("sentry", &x.sentry),
	)
}

// newUseCase builds a use case with all configured clients. The returned
// function releases the store and must be called when the command finishes.
func (x *runtimeConfig) newUseCase(ctx context.Context) (*usecase.UseCase, func(), error) {
	if err := x.sentry.Configure(ctx); err != nil {
		return nil, nil, err
	}

	ghClient, err := x.github.NewClient(ctx)
	if err != nil {
		return nil, nil, err
	}

	vcs, err := x.git.NewVCS(x.github.Token())
	if err != nil {
		return nil, nil, err
	}

	repo, closer, err := x.store.NewRepository(ctx)
	if err != nil {
		return nil, nil, err
	}

	options := []infra.Option{
		infra.WithGitHub(ghClient),
		infra.WithVCS(vcs),
		infra.WithFetcher(fetcher.New(fetcher.WithTimeout(x.archiveTimeout))),
		infra.WithRepository(repo),
	}

	bqClient, err := x.bigQuery.NewClient(ctx)
	if err != nil {
		closer()
		return nil, nil, err
	}
	if bqClient != nil {
		options = append(options, infra.WithBigQuery(bqClient))
	}

	notifier, err := x.slack.NewNotifier()
	if err != nil {
		closer()
		return nil, nil, err
	}
	if notifier != nil {
		options = append(options, infra.WithNotifier(notifier))
	}

	uc := usecase.New(infra.New(options...),
		usecase.WithChunkSize(int(x.chunkSize)),
		usecase.WithWorkflowOptions(workflow.WithRemote(x.git.Remote())),
	)

	logging.From(ctx).Debug("use case is ready", slog.Any("config", x))
	return uc, closer, nil
}
