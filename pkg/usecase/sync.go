package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/utils/errutil"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/brewup/pkg/workflow"
	"github.com/m-mizutani/goerr/v2"
)

// SyncUpstreams brings the base branch of every checkout up to date with its
// upstream and pushes it to the fork. A checkout shared by several tracked
// repositories is synced once.
func (x *UseCase) SyncUpstreams(ctx context.Context, remote string) error {
	if remote == "" {
		remote = workflow.DefaultRemote
	}
	if x.clients.VCS() == nil {
		return goerr.Wrap(types.ErrInvalidOption, "VCS client is required to sync upstream")
	}

	repos, err := x.ListRepositories(ctx)
	if err != nil {
		return err
	}

	logger := logging.From(ctx)
	synced := map[string]struct{}{}
	var failed []string
	for _, repo := range repos {
		if !repo.Publishable() {
			continue
		}
		if _, ok := synced[repo.CheckoutPath]; ok {
			continue
		}
		synced[repo.CheckoutPath] = struct{}{}

		upstreamURL := "https://github.com/" + repo.Upstream.Owner + "/" + repo.Upstream.Repo
		base := types.BranchName(repo.Upstream.Base())
		if err := x.clients.VCS().SyncUpstream(ctx, repo.CheckoutPath, remote, upstreamURL, base); err != nil {
			errutil.HandleError(ctx, "failed to sync upstream", goerr.Wrap(err, "sync failed",
				goerr.V("path", repo.CheckoutPath),
				goerr.V("upstream", upstreamURL),
			))
			failed = append(failed, repo.CheckoutPath)
			continue
		}

		logger.Info("synced upstream",
			slog.String("path", repo.CheckoutPath),
			slog.String("upstream", upstreamURL),
			slog.Any("base", base),
		)
	}

	if len(failed) > 0 {
		return goerr.New("failed to sync some checkouts", goerr.V("paths", failed))
	}
	return nil
}
