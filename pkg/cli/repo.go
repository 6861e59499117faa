package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/brewup/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func repoCommand() *cli.Command {
	return &cli.Command{
		Name:  "repo",
		Usage: "Manage tracked repositories",
		Commands: []*cli.Command{
			repoListCommand(),
			repoAddCommand(),
			repoRemoveCommand(),
			repoExportCommand(),
			repoImportCommand(),
		},
	}
}

func repoListCommand() *cli.Command {
	var rt runtimeConfig
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List tracked repositories",
		Flags:   rt.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closer, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer closer()

			repos, err := uc.ListRepositories(ctx)
			if err != nil {
				return err
			}
			return printRepositories(os.Stdout, repos)
		},
	}
}

func printRepositories(w io.Writer, repos []*model.TrackedRepository) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tSOURCE\tSTRATEGY\tVERSION\tENABLED\tCHECKED AT")
	for _, repo := range repos {
		checkedAt := "-"
		if !repo.CheckedAt.IsZero() {
			checkedAt = repo.CheckedAt.Format("2006-01-02 15:04:05")
		}
		version := repo.CurrentVersion
		if version == "" {
			version = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\t%s\n",
			repo.Name, repo.FullName(), repo.Strategy, version, repo.Enabled, checkedAt)
	}
	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to write repository list")
	}
	return nil
}

func repoAddCommand() *cli.Command {
	var (
		repo     model.TrackedRepository
		name     string
		strategy string
		rule     string
		disabled bool
		rt       runtimeConfig
	)

	addFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "name",
			Usage:       "Formula name, e.g. homebrew/core/composer",
			Required:    true,
			Destination: &name,
		},
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Owner of the watched GitHub repository",
			Required:    true,
			Destination: &repo.Owner,
		},
		&cli.StringFlag{
			Name:        "source-repo",
			Usage:       "Name of the watched GitHub repository",
			Required:    true,
			Destination: &repo.Repo,
		},
		&cli.StringFlag{
			Name:        "strategy",
			Usage:       "Resolver strategy [" + strings.Join(strategyNames(), "|") + "]",
			Value:       string(types.StrategyTagTarballPrefixV),
			Destination: &strategy,
		},
		&cli.StringFlag{
			Name:        "version-rule",
			Usage:       "Tag normalization rule [strip-v|release-underscore], empty selects by name",
			Destination: &rule,
		},
		&cli.StringFlag{
			Name:        "archive-template",
			Usage:       "Archive URL template with {owner}, {name}, {version} and {filename}",
			Destination: &repo.ArchiveTemplate,
		},
		&cli.StringFlag{
			Name:        "current-version",
			Usage:       "Version currently published in the formula",
			Destination: &repo.CurrentVersion,
		},
		&cli.StringFlag{
			Name:        "checkout",
			Usage:       "Path of local checkout of the formula repository, enables publishing",
			Destination: &repo.CheckoutPath,
		},
		&cli.StringFlag{
			Name:        "upstream-owner",
			Usage:       "Owner of the formula repository receiving pull requests",
			Destination: &repo.Upstream.Owner,
		},
		&cli.StringFlag{
			Name:        "upstream-repo",
			Usage:       "Name of the formula repository receiving pull requests",
			Destination: &repo.Upstream.Repo,
		},
		&cli.StringFlag{
			Name:        "base-branch",
			Usage:       "Base branch of pull requests",
			Value:       model.DefaultBaseBranch,
			Destination: &repo.Upstream.BaseBranch,
		},
		&cli.StringFlag{
			Name:        "fork-owner",
			Usage:       "Owner of the fork that branches are pushed to",
			Destination: &repo.ForkOwner,
		},
		&cli.StringSliceFlag{
			Name:        "revision-target",
			Usage:       "Sibling formula whose revision is bumped together (repeatable)",
			Destination: &repo.RevisionTargets,
		},
		&cli.StringSliceFlag{
			Name:        "dependent-target",
			Usage:       "Dependent formula whose archive is replaced together (repeatable)",
			Destination: &repo.DependentTargets,
		},
		&cli.BoolFlag{
			Name:        "disabled",
			Usage:       "Add the repository without checking it periodically",
			Destination: &disabled,
		},
	}

	return &cli.Command{
		Name:  "add",
		Usage: "Add a tracked repository",
		Flags: slice.Flatten(addFlags, rt.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo.Name = types.RepoName(name)
			repo.Strategy = types.ResolverStrategy(strategy)
			repo.VersionRule = types.VersionRule(rule)
			repo.Enabled = !disabled

			uc, closer, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer closer()

			if err := uc.AddRepository(ctx, &repo); err != nil {
				return err
			}
			logging.From(ctx).Info("added tracked repository", slog.Any("name", repo.Name))
			return nil
		},
	}
}

func strategyNames() []string {
	names := make([]string, len(types.ResolverStrategies))
	for i, s := range types.ResolverStrategies {
		names[i] = string(s)
	}
	return names
}

func repoRemoveCommand() *cli.Command {
	var rt runtimeConfig
	return &cli.Command{
		Name:      "remove",
		Aliases:   []string{"rm"},
		Usage:     "Remove a tracked repository",
		ArgsUsage: "NAME",
		Flags:     rt.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.Wrap(types.ErrInvalidOption, "exactly one repository name is required")
			}
			name := types.RepoName(c.Args().First())

			uc, closer, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer closer()

			if err := uc.RemoveRepository(ctx, name); err != nil {
				return err
			}
			logging.From(ctx).Info("removed tracked repository", slog.Any("name", name))
			return nil
		},
	}
}

func repoExportCommand() *cli.Command {
	var (
		output string
		rt     runtimeConfig
	)
	exportFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Output file path, '-' for stdout",
			Value:       "-",
			Destination: &output,
		},
	}

	return &cli.Command{
		Name:  "export",
		Usage: "Export tracked repositories as JSON",
		Flags: slice.Flatten(exportFlags, rt.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closer, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer closer()

			var w io.Writer = os.Stdout
			if output != "-" {
				fd, err := os.Create(filepath.Clean(output))
				if err != nil {
					return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
				}
				defer safe.Close(fd)
				w = fd
			}

			return uc.ExportRepositories(ctx, w)
		},
	}
}

func repoImportCommand() *cli.Command {
	var (
		input string
		rt    runtimeConfig
	)
	importFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Usage:       "Input file path, '-' for stdin",
			Value:       "-",
			Destination: &input,
		},
	}

	return &cli.Command{
		Name:  "import",
		Usage: "Import tracked repositories from JSON exported by 'repo export'",
		Flags: slice.Flatten(importFlags, rt.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closer, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer closer()

			var r io.Reader = os.Stdin
			if input != "-" {
				fd, err := os.Open(filepath.Clean(input))
				if err != nil {
					return goerr.Wrap(err, "failed to open input file", goerr.V("path", input))
				}
				defer safe.Close(fd)
				r = fd
			}

			n, err := uc.ImportRepositories(ctx, r)
			if err != nil {
				return err
			}
			logging.From(ctx).Info("imported tracked repositories", slog.Int("count", n))
			return nil
		},
	}
}
