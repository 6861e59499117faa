package cli

import (
	"context"

	"github.com/m-mizutani/brewup/pkg/cli/config"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

// Run parses argv and runs the selected command. Errors are logged before
// they are returned, so main only has to set the exit code.
func (x *CLI) Run(argv []string) error {
	var logCfg config.Logging

	app := &cli.Command{
		Name:  "brewup",
		Usage: "Watch upstream releases and open Homebrew formula update pull requests",
		Flags: logCfg.Flags(),
		Commands: []*cli.Command{
			checkCommand(),
			serveCommand(),
			repoCommand(),
			syncCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := logCfg.Configure(); err != nil {
				return ctx, err
			}
			logging.Default().Debug("logger configured", "config", &logCfg)
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
