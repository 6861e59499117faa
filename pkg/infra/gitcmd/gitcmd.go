package gitcmd

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// UpstreamRemote is the remote name registered for the upstream repository.
const UpstreamRemote = "upstream"

// Client runs the git command line in a working tree.
type Client struct {
	bin         string
	authorName  string
	authorEmail string
}

var _ interfaces.VCS = (*Client)(nil)

type Option func(*Client)

func WithBinary(path string) Option {
	return func(x *Client) {
		x.bin = path
	}
}

// WithAuthor overrides user.name and user.email of commits.
func WithAuthor(name, email string) Option {
	return func(x *Client) {
		x.authorName = name
		x.authorEmail = email
	}
}

func New(options ...Option) *Client {
	x := &Client{bin: "git"}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *Client) run(ctx context.Context, path string, args ...string) (string, error) {
	var full []string
	if x.authorName != "" {
		full = append(full, "-c", "user.name="+x.authorName)
	}
	if x.authorEmail != "" {
		full = append(full, "-c", "user.email="+x.authorEmail)
	}
	full = append(full, args...)

	cmd := exec.CommandContext(ctx, x.bin, full...)
	cmd.Dir = path
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", goerr.Wrap(errors.Join(types.ErrTransientIO, err), "git command failed",
			goerr.V("path", path),
			goerr.V("args", args),
			goerr.V("output", strings.TrimSpace(string(out))),
		)
	}

	logging.From(ctx).Debug("git command done",
		slog.String("path", path),
		slog.Any("args", args),
	)
	return strings.TrimSpace(string(out)), nil
}

func (x *Client) Checkout(ctx context.Context, path string, branch types.BranchName) error {
	_, err := x.run(ctx, path, "checkout", string(branch))
	return err
}

// CreateBranch creates branch at HEAD and switches to it. An existing branch
// of the same name is reset, so a retry after a failed run starts clean.
func (x *Client) CreateBranch(ctx context.Context, path string, branch types.BranchName) error {
	_, err := x.run(ctx, path, "checkout", "-B", string(branch))
	return err
}

func (x *Client) DeleteBranch(ctx context.Context, path string, branch types.BranchName) error {
	_, err := x.run(ctx, path, "branch", "-D", string(branch))
	return err
}

func (x *Client) AddAll(ctx context.Context, path string) error {
	_, err := x.run(ctx, path, "add", "--all")
	return err
}

// Commit records staged changes. A clean index is types.ErrNothingToCommit.
func (x *Client) Commit(ctx context.Context, path, message string) (types.CommitID, error) {
	staged, err := x.run(ctx, path, "diff", "--cached", "--name-only")
	if err != nil {
		return "", err
	}
	if staged == "" {
		return "", goerr.Wrap(types.ErrNothingToCommit, "no staged change", goerr.V("path", path))
	}

	if _, err := x.run(ctx, path, "commit", "-m", message); err != nil {
		return "", err
	}

	out, err := x.run(ctx, path, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return types.CommitID(out), nil
}

// Push pushes branch to remote. The branch is owned by this tool, so a
// branch rebuilt from base replaces the remote one.
func (x *Client) Push(ctx context.Context, path, remote string, branch types.BranchName) error {
	_, err := x.run(ctx, path, "push", "--force", remote, string(branch))
	return err
}

func (x *Client) SyncUpstream(ctx context.Context, path, remote, upstreamURL string, base types.BranchName) error {
	if err := x.Checkout(ctx, path, base); err != nil {
		return err
	}

	if _, err := x.run(ctx, path, "remote", "get-url", UpstreamRemote); err != nil {
		if _, err := x.run(ctx, path, "remote", "add", UpstreamRemote, upstreamURL); err != nil {
			return err
		}
		logging.From(ctx).Info("added upstream remote",
			slog.String("path", path),
			slog.String("url", upstreamURL),
		)
	}

	steps := [][]string{
		{"fetch", UpstreamRemote, string(base)},
		{"rebase", UpstreamRemote + "/" + string(base)},
		{"push", remote, string(base)},
	}
	for _, args := range steps {
		if _, err := x.run(ctx, path, args...); err != nil {
			return err
		}
	}

	return nil
}
