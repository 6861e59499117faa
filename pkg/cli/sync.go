package cli

import (
	"context"

	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func syncCommand() *cli.Command {
	var rt runtimeConfig
	return &cli.Command{
		Name:  "sync",
		Usage: "Bring local checkouts up to date with their upstream base branch and push to fork",
		Flags: rt.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closer, err := rt.newUseCase(ctx)
			if err != nil {
				return err
			}
			defer closer()

			if err := uc.SyncUpstreams(ctx, rt.git.Remote()); err != nil {
				return err
			}
			logging.From(ctx).Info("synchronized checkouts")
			return nil
		},
	}
}
