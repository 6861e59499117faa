package gitrepo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const UpstreamRemote = "upstream"

// Client operates working trees in process with go-git. Unlike the git
// command line it can only fast-forward the base branch on sync.
type Client struct {
	authorName  string
	authorEmail string
	auth        transport.AuthMethod
}

var _ interfaces.VCS = (*Client)(nil)

type Option func(*Client)

func WithAuthor(name, email string) Option {
	return func(x *Client) {
		x.authorName = name
		x.authorEmail = email
	}
}

// WithToken authenticates fetch and push over HTTPS with a GitHub token.
func WithToken(token types.GitHubToken) Option {
	return func(x *Client) {
		if token != "" {
			x.auth = &githttp.BasicAuth{Username: "x-access-token", Password: string(token)}
		}
	}
}

func New(options ...Option) *Client {
	x := &Client{
		authorName:  "brewup",
		authorEmail: "brewup@users.noreply.github.com",
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func open(path string) (*git.Repository, *git.Worktree, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to open git repository", goerr.V("path", path))
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to get worktree", goerr.V("path", path))
	}
	return repo, wt, nil
}

func (x *Client) Checkout(ctx context.Context, path string, branch types.BranchName) error {
	_, wt, err := open(path)
	if err != nil {
		return err
	}

	// Without Keep, index and worktree are reset to the branch. Unstaged
	// changes make the checkout fail instead of leaking into the branch.
	if err := wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(string(branch)),
	}); err != nil {
		return goerr.Wrap(err, "failed to checkout branch",
			goerr.V("path", path),
			goerr.V("branch", branch),
		)
	}
	return nil
}

// CreateBranch points branch at HEAD, replacing an existing one, and switches to it.
func (x *Client) CreateBranch(ctx context.Context, path string, branch types.BranchName) error {
	repo, wt, err := open(path)
	if err != nil {
		return err
	}

	head, err := repo.Head()
	if err != nil {
		return goerr.Wrap(err, "failed to get HEAD", goerr.V("path", path))
	}

	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(string(branch)), head.Hash())
	if err := repo.Storer.SetReference(ref); err != nil {
		return goerr.Wrap(err, "failed to create branch",
			goerr.V("path", path),
			goerr.V("branch", branch),
		)
	}

	if err := wt.Checkout(&git.CheckoutOptions{Branch: ref.Name()}); err != nil {
		return goerr.Wrap(err, "failed to checkout branch",
			goerr.V("path", path),
			goerr.V("branch", branch),
		)
	}
	return nil
}

func (x *Client) DeleteBranch(ctx context.Context, path string, branch types.BranchName) error {
	repo, _, err := open(path)
	if err != nil {
		return err
	}

	name := plumbing.NewBranchReferenceName(string(branch))
	if _, err := repo.Reference(name, false); err != nil {
		return goerr.Wrap(err, "branch not found",
			goerr.V("path", path),
			goerr.V("branch", branch),
		)
	}
	if err := repo.Storer.RemoveReference(name); err != nil {
		return goerr.Wrap(err, "failed to delete branch",
			goerr.V("path", path),
			goerr.V("branch", branch),
		)
	}
	if err := repo.DeleteBranch(string(branch)); err != nil && !errors.Is(err, git.ErrBranchNotFound) {
		return goerr.Wrap(err, "failed to delete branch config",
			goerr.V("path", path),
			goerr.V("branch", branch),
		)
	}
	return nil
}

func (x *Client) AddAll(ctx context.Context, path string) error {
	_, wt, err := open(path)
	if err != nil {
		return err
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return goerr.Wrap(err, "failed to add files", goerr.V("path", path))
	}
	return nil
}

func (x *Client) Commit(ctx context.Context, path, message string) (types.CommitID, error) {
	_, wt, err := open(path)
	if err != nil {
		return "", err
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  x.authorName,
			Email: x.authorEmail,
			When:  logging.CtxTime(ctx),
		},
	})
	if errors.Is(err, git.ErrEmptyCommit) {
		return "", goerr.Wrap(types.ErrNothingToCommit, "no staged change", goerr.V("path", path))
	}
	if err != nil {
		return "", goerr.Wrap(err, "failed to commit", goerr.V("path", path))
	}
	return types.CommitID(hash.String()), nil
}

func (x *Client) Push(ctx context.Context, path, remote string, branch types.BranchName) error {
	repo, _, err := open(path)
	if err != nil {
		return err
	}

	name := plumbing.NewBranchReferenceName(string(branch))
	err = repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remote,
		RefSpecs:   []config.RefSpec{config.RefSpec("+" + name.String() + ":" + name.String())},
		Auth:       x.auth,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return goerr.Wrap(errors.Join(types.ErrTransientIO, err), "failed to push",
			goerr.V("path", path),
			goerr.V("remote", remote),
			goerr.V("branch", branch),
		)
	}
	return nil
}

// SyncUpstream fetches base from the upstream remote, fast-forwards the local
// base to it and pushes base to remote. A diverged base is an error.
func (x *Client) SyncUpstream(ctx context.Context, path, remote, upstreamURL string, base types.BranchName) error {
	if err := x.Checkout(ctx, path, base); err != nil {
		return err
	}

	repo, wt, err := open(path)
	if err != nil {
		return err
	}

	if _, err := repo.Remote(UpstreamRemote); errors.Is(err, git.ErrRemoteNotFound) {
		if _, err := repo.CreateRemote(&config.RemoteConfig{
			Name: UpstreamRemote,
			URLs: []string{upstreamURL},
		}); err != nil {
			return goerr.Wrap(err, "failed to add upstream remote", goerr.V("url", upstreamURL))
		}
		logging.From(ctx).Info("added upstream remote",
			slog.String("path", path),
			slog.String("url", upstreamURL),
		)
	} else if err != nil {
		return goerr.Wrap(err, "failed to get upstream remote", goerr.V("path", path))
	}

	local := plumbing.NewBranchReferenceName(string(base))
	tracking := plumbing.NewRemoteReferenceName(UpstreamRemote, string(base))
	err = repo.FetchContext(ctx, &git.FetchOptions{
		RemoteName: UpstreamRemote,
		RefSpecs:   []config.RefSpec{config.RefSpec("+" + local.String() + ":" + tracking.String())},
		Auth:       x.auth,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return goerr.Wrap(errors.Join(types.ErrTransientIO, err), "failed to fetch upstream",
			goerr.V("path", path),
			goerr.V("base", base),
		)
	}

	if err := fastForward(repo, wt, local, tracking); err != nil {
		return err
	}

	return x.Push(ctx, path, remote, base)
}

func fastForward(repo *git.Repository, wt *git.Worktree, local, tracking plumbing.ReferenceName) error {
	localRef, err := repo.Reference(local, true)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve base branch", goerr.V("ref", local))
	}
	upRef, err := repo.Reference(tracking, true)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve upstream branch", goerr.V("ref", tracking))
	}
	if localRef.Hash() == upRef.Hash() {
		return nil
	}

	localCommit, err := repo.CommitObject(localRef.Hash())
	if err != nil {
		return goerr.Wrap(err, "failed to get base commit")
	}
	upCommit, err := repo.CommitObject(upRef.Hash())
	if err != nil {
		return goerr.Wrap(err, "failed to get upstream commit")
	}

	ok, err := localCommit.IsAncestor(upCommit)
	if err != nil {
		return goerr.Wrap(err, "failed to compare commits")
	}
	if !ok {
		if ahead, _ := upCommit.IsAncestor(localCommit); ahead {
			return nil
		}
		return goerr.Wrap(types.ErrInvalidOption, "base branch diverged from upstream, rebase is not supported",
			goerr.V("local", localRef.Hash().String()),
			goerr.V("upstream", upRef.Hash().String()),
		)
	}

	if err := repo.Storer.SetReference(plumbing.NewHashReference(local, upRef.Hash())); err != nil {
		return goerr.Wrap(err, "failed to update base branch")
	}
	if err := wt.Reset(&git.ResetOptions{Commit: upRef.Hash(), Mode: git.HardReset}); err != nil {
		return goerr.Wrap(err, "failed to reset worktree", goerr.V("commit", upRef.Hash().String()))
	}
	return nil
}

