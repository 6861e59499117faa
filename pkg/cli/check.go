package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/usecase"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func checkCommand() *cli.Command {
	var (
		name        string
		concurrency int64
		rt          runtimeConfig
	)

	checkFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "repo",
			Aliases:     []string{"r"},
			Usage:       "Check only the tracked repository of this name, even if it is disabled",
			Sources:     cli.EnvVars("BREWUP_REPO"),
			Destination: &name,
		},
		&cli.Int64Flag{
			Name:        "concurrency",
			Aliases:     []string{"c"},
			Usage:       "Number of repositories checked at once",
			Value:       usecase.DefaultConcurrency,
			Sources:     cli.EnvVars("BREWUP_CONCURRENCY"),
			Destination: &concurrency,
		},
	}

	return &cli.Command{
		Name:    "check",
		Aliases: []string{"c"},
		Usage:   "Check tracked repositories for new releases and publish updates",
		Flags:   slice.Flatten(checkFlags, rt.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting check",
				slog.String("repo", name),
				slog.Int64("concurrency", concurrency),
				slog.Any("config", &rt),
			)

			uc, closer, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer closer()

			results, err := uc.CheckAll(ctx, model.CheckOptions{
				Name:        types.RepoName(name),
				Concurrency: int(concurrency),
			})
			printResults(os.Stdout, results)
			return err
		},
	}
}

var (
	colorNew     = color.New(color.FgGreen, color.Bold)
	colorNoop    = color.New(color.FgWhite)
	colorFailure = color.New(color.FgRed, color.Bold)
)

func printResults(w io.Writer, results []*model.CheckResult) {
	for _, result := range results {
		switch {
		case result.Err != nil:
			_, _ = colorFailure.Fprintf(w, "✗ %s: %s\n", result.Name, result.Err.Error())

		case result.Decision.IsNew():
			line := fmt.Sprintf("↑ %s: %s -> %s", result.Name, result.PreviousVersion, result.Decision.Version)
			if result.Publish != nil && result.Publish.PullRequestURL != "" {
				line += " " + result.Publish.PullRequestURL
			}
			_, _ = colorNew.Fprintln(w, line)

		default:
			_, _ = colorNoop.Fprintf(w, "= %s: %s\n", result.Name, result.Decision.Reason)
		}
	}
}
