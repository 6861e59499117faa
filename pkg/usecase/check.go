package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/m-mizutani/brewup/pkg/detector"
	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/metrics"
	"github.com/m-mizutani/brewup/pkg/resolver"
	"github.com/m-mizutani/brewup/pkg/utils/errutil"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/brewup/pkg/workflow"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

func (x *UseCase) store() (interfaces.Repository, error) {
	if x.clients.Repository() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repository store is not configured")
	}
	return x.clients.Repository(), nil
}

// CheckRepository resolves the latest release of the named repository and,
// if it is newer than the recorded version, notifies and publishes it. The
// record is updated only when the check got through. Checks of the same
// repository run one at a time.
func (x *UseCase) CheckRepository(ctx context.Context, name types.RepoName) (*model.CheckResult, error) {
	store, err := x.store()
	if err != nil {
		return nil, err
	}

	return x.check(ctx, store, name)
}

// CheckAll runs CheckRepository for every enabled repository, or only for
// opts.Name when it is set. A failed repository does not stop the others; an
// error summarizing the failures is returned with all results.
func (x *UseCase) CheckAll(ctx context.Context, opts model.CheckOptions) ([]*model.CheckResult, error) {
	store, err := x.store()
	if err != nil {
		return nil, err
	}

	var targets []*model.TrackedRepository
	if opts.Name != "" {
		repo, err := store.GetRepository(ctx, opts.Name)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get tracked repository", goerr.V("name", opts.Name))
		}
		targets = append(targets, repo)
	} else {
		repos, err := store.ListRepositories(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list tracked repositories")
		}
		for _, repo := range repos {
			if repo.Enabled {
				targets = append(targets, repo)
			}
		}
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	logger := logging.From(ctx)
	logger.Info("start checking tracked repositories",
		slog.Int("targets", len(targets)),
		slog.Int("concurrency", concurrency),
	)

	results := make([]*model.CheckResult, len(targets))
	var eg errgroup.Group
	eg.SetLimit(concurrency)
	for i, repo := range targets {
		eg.Go(func() error {
			result, err := x.check(ctx, store, repo.Name)
			if err != nil {
				errutil.HandleError(ctx, "failed to check tracked repository", err)
			}
			results[i] = result
			return nil
		})
	}
	_ = eg.Wait()

	var failed []types.RepoName
	for _, result := range results {
		if result.Err != nil {
			failed = append(failed, result.Name)
		}
	}

	logger.Info("finished checking tracked repositories",
		slog.Int("total", len(results)),
		slog.Int("failed", len(failed)),
	)

	if len(failed) > 0 {
		return results, goerr.New("some tracked repositories failed to be checked",
			goerr.V("failed", failed),
			goerr.V("total", len(results)),
		)
	}
	return results, nil
}

// FindRepositories returns tracked repositories watching owner/repo. GitHub
// names are case insensitive.
func (x *UseCase) FindRepositories(ctx context.Context, owner, repo string) ([]*model.TrackedRepository, error) {
	store, err := x.store()
	if err != nil {
		return nil, err
	}

	repos, err := store.ListRepositories(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tracked repositories")
	}

	var matched []*model.TrackedRepository
	for _, r := range repos {
		if strings.EqualFold(r.Owner, owner) && strings.EqualFold(r.Repo, repo) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// check serializes checks of the same repository and reads the record inside
// the lock, so a check that waited sees the version and pull request the
// previous one recorded and does not publish the same release again.
func (x *UseCase) check(ctx context.Context, store interfaces.Repository, name types.RepoName) (*model.CheckResult, error) {
	unlock := x.checkLocks.Lock(string(name))
	defer unlock()

	repo, err := store.GetRepository(ctx, name)
	if err != nil {
		err = goerr.Wrap(err, "failed to get tracked repository", goerr.V("name", name))
		return &model.CheckResult{Name: name, Err: err}, err
	}

	return x.checkLocked(ctx, store, repo)
}

// checkLocked always returns a result. Its Err is the same as the returned
// error, or a reported error that did not stop the check.
func (x *UseCase) checkLocked(ctx context.Context, store interfaces.Repository, repo *model.TrackedRepository) (result *model.CheckResult, err error) {
	start := time.Now()
	result = &model.CheckResult{
		Name:            repo.Name,
		PreviousVersion: repo.CurrentVersion,
	}

	logger := logging.From(ctx).With(slog.Any("name", repo.Name))
	ctx = logging.With(ctx, logger)

	defer func() {
		if err != nil {
			result.Err = err
		}
		metrics.CheckDuration.Observe(time.Since(start).Seconds())
		metrics.CheckTotal.WithLabelValues(checkLabel(result)).Inc()
		x.recordHistory(ctx, result)
	}()

	if x.clients.GitHub() == nil || x.clients.Fetcher() == nil {
		return result, goerr.Wrap(types.ErrInvalidOption, "GitHub client and artifact fetcher are required")
	}

	tags := resolver.NewTagHistory(x.clients.GitHub(), store, resolver.WithChunkSize(x.chunkSize))
	res, err := resolver.New(repo, tags, x.clients.Fetcher())
	if err != nil {
		return result, err
	}

	raw, found, err := res.Latest(ctx)
	if err != nil {
		return result, err
	}
	if !found {
		logger.Info("no release yet", slog.Any("reason", types.ErrNoReleaseYet))
		result.Decision = model.NoChange(types.ErrNoReleaseYet.Error())
		return result, x.stampChecked(ctx, store, repo)
	}

	version := res.Normalize(raw)
	result.Decision = detector.Decide(ctx, version, res.Normalize(repo.CurrentVersion))
	if !result.Decision.IsNew() {
		logger.Debug("no new version",
			slog.String("latest", version),
			slog.String("reason", result.Decision.Reason),
		)
		return result, x.stampChecked(ctx, store, repo)
	}

	archive, err := res.Archive(ctx, version)
	if err != nil {
		return result, err
	}
	release := model.Release{RawTag: raw, Version: version, Archive: *archive}
	result.Release = &release
	logger.Info("found new version", slog.Any("release", release))

	if notifier := x.clients.Notifier(); notifier != nil {
		if err := notifier.NotifyRelease(ctx, repo, &release); err != nil {
			errutil.HandleError(ctx, "failed to notify release", err)
		}
	}

	updated := repo.Copy()
	if repo.Publishable() {
		if x.clients.VCS() == nil {
			return result, goerr.Wrap(types.ErrInvalidOption, "VCS client is required to publish", goerr.V("name", repo.Name))
		}

		wf := workflow.New(x.clients.VCS(), x.clients.GitHub(), x.workflowOpts...)
		pc, err := wf.Run(ctx, repo, release)
		result.Publish = &pc
		switch {
		case errors.Is(err, types.ErrNothingToCommit):
			// The version is still recorded so that the same release is not
			// reported again on every check.
			errutil.HandleError(ctx, "definition file has nothing to update", err)
			result.Err = err
		case err != nil:
			return result, err
		default:
			updated.PullRequestURL = pc.PullRequestURL
		}
	}

	now := logging.CtxTime(ctx)
	updated.CurrentVersion = version
	updated.ArchiveURL = archive.URL
	updated.ArchiveHash = archive.Hash
	updated.CheckedAt = now
	updated.UpdatedAt = now
	if err := store.PutRepository(ctx, updated); err != nil {
		return result, goerr.Wrap(err, "failed to put tracked repository", goerr.V("name", repo.Name))
	}

	return result, nil
}

func (x *UseCase) stampChecked(ctx context.Context, store interfaces.Repository, repo *model.TrackedRepository) error {
	updated := repo.Copy()
	updated.CheckedAt = logging.CtxTime(ctx)
	if err := store.PutRepository(ctx, updated); err != nil {
		return goerr.Wrap(err, "failed to put tracked repository", goerr.V("name", repo.Name))
	}
	return nil
}

func checkLabel(result *model.CheckResult) string {
	switch {
	case result.Err != nil:
		return "error"
	case result.Decision.IsNew():
		return string(model.DecisionNewVersion)
	case result.Decision.Reason == types.ErrNoReleaseYet.Error():
		return "no_release"
	default:
		return string(model.DecisionNoChange)
	}
}
