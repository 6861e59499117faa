package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestSyncUpstreams(t *testing.T) {
	putCheckout := func(t *testing.T, e *env, name types.RepoName, path string) {
		t.Helper()
		gt.NoError(t, e.store.PutRepository(context.Background(), &model.TrackedRepository{
			Name:         name,
			Owner:        "acme",
			Repo:         string(name),
			Strategy:     types.StrategyTagTarball,
			CheckoutPath: path,
			Upstream:     model.Upstream{Owner: "Homebrew", Repo: "homebrew-php", BaseBranch: "main"},
			ForkOwner:    "bot",
		}))
	}

	t.Run("shared checkout is synced once", func(t *testing.T) {
		e := newEnv(t)
		putCheckout(t, e, "a", "/tmp/homebrew-php")
		putCheckout(t, e, "b", "/tmp/homebrew-php")
		putCheckout(t, e, "c", "")

		gt.NoError(t, e.uc.SyncUpstreams(context.Background(), ""))

		calls := e.vcs.SyncUpstreamCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Path).Equal("/tmp/homebrew-php")
		gt.V(t, calls[0].Remote).Equal("origin")
		gt.V(t, calls[0].UpstreamURL).Equal("https://github.com/Homebrew/homebrew-php")
		gt.V(t, calls[0].Base).Equal(types.BranchName("main"))
	})

	t.Run("failure of one checkout does not stop others", func(t *testing.T) {
		e := newEnv(t)
		e.vcs.SyncUpstreamFunc = func(ctx context.Context, path, remote, upstreamURL string, base types.BranchName) error {
			if path == "/tmp/one" {
				return goerr.Wrap(types.ErrTransientIO, "fetch failed")
			}
			return nil
		}
		putCheckout(t, e, "a", "/tmp/one")
		putCheckout(t, e, "b", "/tmp/two")

		gt.Error(t, e.uc.SyncUpstreams(context.Background(), "fork"))
		gt.V(t, len(e.vcs.SyncUpstreamCalls())).Equal(2)
	})
}
