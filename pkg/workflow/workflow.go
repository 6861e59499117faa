package workflow

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/metrics"
	"github.com/m-mizutani/brewup/pkg/utils/errutil"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultRemote = "origin"

	DefaultPullRequestBody = "---\n\nPull request opened by [brewup](https://github.com/m-mizutani/brewup)."
)

// Workflow publishes a release to the downstream definition repository: it
// patches definition files on a new branch, pushes it to the fork and opens a
// pull request against the upstream.
type Workflow struct {
	vcs    interfaces.VCS
	github interfaces.GitHub
	remote string
	body   string
}

type Option func(*Workflow)

// WithRemote sets the git remote of the fork. Default is "origin".
func WithRemote(remote string) Option {
	return func(x *Workflow) {
		x.remote = remote
	}
}

func WithPullRequestBody(body string) Option {
	return func(x *Workflow) {
		x.body = body
	}
}

func New(vcs interfaces.VCS, gh interfaces.GitHub, options ...Option) *Workflow {
	x := &Workflow{
		vcs:    vcs,
		github: gh,
		remote: DefaultRemote,
		body:   DefaultPullRequestBody,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

type step struct {
	name string
	fn   func(ctx context.Context, c model.PublishContext) (model.PublishContext, error)
}

func (x *Workflow) steps() []step {
	return []step{
		{"checkout_base", x.checkoutBase},
		{"create_branch", x.createBranch},
		{"patch_primary", x.patchPrimary},
		{"bump_revisions", x.bumpRevisions},
		{"patch_dependents", x.patchDependents},
		{"commit", x.commit},
		{"push", x.push},
		{"close_stale_pull_request", x.closeStalePullRequest},
		{"open_pull_request", x.openPullRequest},
	}
}

// Run executes the publish steps in order. Runs for the same checkout path
// are serialized. When the primary definition file yields nothing to commit,
// the branch is rolled back and an error wrapping types.ErrNothingToCommit is
// returned with a context in StateRolledBack. Any other failure stops the run
// and is returned with the context of the last completed step.
func (x *Workflow) Run(ctx context.Context, repo *model.TrackedRepository, release model.Release) (model.PublishContext, error) {
	if !repo.Publishable() {
		return model.PublishContext{}, goerr.Wrap(types.ErrInvalidOption, "repository has no checkout path", goerr.V("name", repo.Name))
	}

	unlock := checkoutLocks.Lock(repo.CheckoutPath)
	defer unlock()

	logger := logging.From(ctx).With(
		slog.Any("name", repo.Name),
		slog.String("version", release.Version),
	)
	ctx = logging.With(ctx, logger)

	c := model.PublishContext{
		State:   model.StateIdle,
		Repo:    repo,
		Release: release,
	}
	defer func() {
		metrics.PublishTotal.WithLabelValues(string(c.State)).Inc()
	}()

	for _, s := range x.steps() {
		next, err := s.fn(ctx, c)
		if err != nil {
			if errors.Is(err, types.ErrNothingToCommit) {
				c = x.rollback(ctx, c)
				return c, err
			}
			return c, goerr.Wrap(err, "publish step failed",
				goerr.V("step", s.name),
				goerr.V("state", c.State),
			)
		}
		c = next
		logger.Debug("publish step done", slog.String("step", s.name), slog.Any("state", c.State))
	}

	if err := x.vcs.Checkout(ctx, repo.CheckoutPath, types.BranchName(repo.Upstream.Base())); err != nil {
		logger.Warn("failed to return to base branch", slog.Any("error", err))
	}

	logger.Info("published release", slog.String("pull_request", c.PullRequestURL))
	return c, nil
}

// rollback returns to the base branch and deletes the publish branch. Its own
// failures are reported but do not change the result.
func (x *Workflow) rollback(ctx context.Context, c model.PublishContext) model.PublishContext {
	path := c.Repo.CheckoutPath
	if err := x.vcs.Checkout(ctx, path, types.BranchName(c.Repo.Upstream.Base())); err != nil {
		errutil.HandleError(ctx, "failed to checkout base branch on rollback", err)
	}
	if c.Branch != "" {
		if err := x.vcs.DeleteBranch(ctx, path, c.Branch); err != nil {
			errutil.HandleError(ctx, "failed to delete branch on rollback", err)
		}
	}

	logging.From(ctx).Info("rolled back publish branch", slog.Any("branch", c.Branch))
	return c.Next(model.StateRolledBack, nil)
}

func (x *Workflow) checkoutBase(ctx context.Context, c model.PublishContext) (model.PublishContext, error) {
	base := types.BranchName(c.Repo.Upstream.Base())
	if err := x.vcs.Checkout(ctx, c.Repo.CheckoutPath, base); err != nil {
		return c, err
	}
	return c.Next(model.StateOnBase, nil), nil
}

func (x *Workflow) createBranch(ctx context.Context, c model.PublishContext) (model.PublishContext, error) {
	branch := c.Repo.BranchName(c.Release.Version)
	if err := x.vcs.CreateBranch(ctx, c.Repo.CheckoutPath, branch); err != nil {
		return c, err
	}
	return c.Next(model.StateBranched, func(c *model.PublishContext) {
		c.Branch = branch
	}), nil
}

func (x *Workflow) patchPrimary(ctx context.Context, c model.PublishContext) (model.PublishContext, error) {
	path := c.Repo.DefinitionPath()
	err := editFile(path, func(b []byte) ([]byte, error) {
		return ReplaceArchive(b, c.Release.Archive)
	})
	if err != nil {
		return c, err
	}

	return c.Next(model.StatePatched, func(c *model.PublishContext) {
		c.PatchedFiles = append(c.PatchedFiles, path)
	}), nil
}

// bumpRevisions increments the revision of sibling definitions. A failure
// only skips the sibling.
func (x *Workflow) bumpRevisions(ctx context.Context, c model.PublishContext) (model.PublishContext, error) {
	return x.patchTargets(ctx, c, c.Repo.RevisionTargets, BumpRevision), nil
}

// patchDependents replaces the archive of definitions that bundle the same
// artifact. A failure only skips the dependent.
func (x *Workflow) patchDependents(ctx context.Context, c model.PublishContext) (model.PublishContext, error) {
	return x.patchTargets(ctx, c, c.Repo.DependentTargets, func(b []byte) ([]byte, error) {
		return ReplaceArchive(b, c.Release.Archive)
	}), nil
}

func (x *Workflow) patchTargets(ctx context.Context, c model.PublishContext, targets []string, fn func([]byte) ([]byte, error)) model.PublishContext {
	var patched, skipped []string
	for _, target := range targets {
		path := c.Repo.TargetPath(target)
		if err := editFile(path, fn); err != nil {
			logging.From(ctx).Warn("skip definition target",
				slog.String("target", target),
				slog.Any("error", goerr.Wrap(types.ErrDependentPatchSkipped, err.Error(), goerr.V("path", path))),
			)
			skipped = append(skipped, target)
			continue
		}
		patched = append(patched, path)
	}

	return c.Next(c.State, func(c *model.PublishContext) {
		c.PatchedFiles = append(c.PatchedFiles, patched...)
		c.SkippedTargets = append(c.SkippedTargets, skipped...)
	})
}

func (x *Workflow) commit(ctx context.Context, c model.PublishContext) (model.PublishContext, error) {
	path := c.Repo.CheckoutPath
	if err := x.vcs.AddAll(ctx, path); err != nil {
		return c, err
	}
	id, err := x.vcs.Commit(ctx, path, c.Repo.Subject(c.Release.Version))
	if err != nil {
		return c, err
	}
	return c.Next(model.StateCommitted, func(c *model.PublishContext) {
		c.CommitID = id
	}), nil
}

func (x *Workflow) push(ctx context.Context, c model.PublishContext) (model.PublishContext, error) {
	if err := x.vcs.Push(ctx, c.Repo.CheckoutPath, x.remote, c.Branch); err != nil {
		return c, err
	}
	return c.Next(model.StatePushed, nil), nil
}

// closeStalePullRequest closes the pull request opened for the previous
// version if it is still open.
func (x *Workflow) closeStalePullRequest(ctx context.Context, c model.PublishContext) (model.PublishContext, error) {
	url := c.Repo.PullRequestURL
	if url == "" {
		return c, nil
	}

	number := types.PullRequestNumber(url)
	if number == 0 {
		logging.From(ctx).Warn("ignore malformed pull request url", slog.String("url", url))
		return c, nil
	}

	up := c.Repo.Upstream
	pr, err := x.github.GetPullRequest(ctx, up.Owner, up.Repo, number)
	if err != nil {
		return c, err
	}
	if pr.State != model.PullRequestOpen {
		return c, nil
	}

	if err := x.github.ClosePullRequest(ctx, up.Owner, up.Repo, number); err != nil {
		return c, err
	}
	logging.From(ctx).Info("closed stale pull request", slog.String("url", url))

	return c.Next(c.State, func(c *model.PublishContext) {
		c.ClosedPullRequestURL = url
	}), nil
}

func (x *Workflow) openPullRequest(ctx context.Context, c model.PublishContext) (model.PublishContext, error) {
	pr, err := x.github.CreatePullRequest(ctx, &model.NewPullRequest{
		Owner: c.Repo.Upstream.Owner,
		Repo:  c.Repo.Upstream.Repo,
		Title: c.Repo.Subject(c.Release.Version),
		Head:  c.Repo.ForkOwner + ":" + string(c.Branch),
		Base:  c.Repo.Upstream.Base(),
		Body:  x.body,
	})
	if err != nil {
		return c, err
	}

	return c.Next(model.StateDone, func(c *model.PublishContext) {
		c.PullRequestURL = pr.URL
	}), nil
}
