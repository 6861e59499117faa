package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/infra/gitrepo"
	"github.com/m-mizutani/brewup/pkg/repository"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// AddRepository registers a new tracked repository. A relative or "~/"
// checkout path is made absolute, and fork owner and upstream are read from
// the remotes of the checkout when they are omitted.
func (x *UseCase) AddRepository(ctx context.Context, repo *model.TrackedRepository) error {
	store, err := x.store()
	if err != nil {
		return err
	}

	repo = repo.Copy()
	if err := completeCheckout(ctx, repo); err != nil {
		return err
	}

	now := logging.CtxTime(ctx)
	repo.CreatedAt = now
	repo.UpdatedAt = now
	if err := repo.Validate(); err != nil {
		return err
	}

	if _, err := store.GetRepository(ctx, repo.Name); err == nil {
		return goerr.Wrap(repository.ErrAlreadyExists, "tracked repository already exists", goerr.V("name", repo.Name))
	} else if !errors.Is(err, repository.ErrNotFound) {
		return goerr.Wrap(err, "failed to get tracked repository", goerr.V("name", repo.Name))
	}

	if err := store.PutRepository(ctx, repo); err != nil {
		return goerr.Wrap(err, "failed to put tracked repository", goerr.V("name", repo.Name))
	}

	logging.From(ctx).Info("added tracked repository", slog.Any("name", repo.Name))
	return nil
}

func (x *UseCase) ListRepositories(ctx context.Context) ([]*model.TrackedRepository, error) {
	store, err := x.store()
	if err != nil {
		return nil, err
	}
	repos, err := store.ListRepositories(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tracked repositories")
	}
	return repos, nil
}

func (x *UseCase) RemoveRepository(ctx context.Context, name types.RepoName) error {
	store, err := x.store()
	if err != nil {
		return err
	}
	if err := store.DeleteRepository(ctx, name); err != nil {
		return goerr.Wrap(err, "failed to delete tracked repository", goerr.V("name", name))
	}

	logging.From(ctx).Info("removed tracked repository", slog.Any("name", name))
	return nil
}

// ExportRepositories writes all tracked repositories to w as a JSON array.
func (x *UseCase) ExportRepositories(ctx context.Context, w io.Writer) error {
	repos, err := x.ListRepositories(ctx)
	if err != nil {
		return err
	}
	if repos == nil {
		repos = []*model.TrackedRepository{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(repos); err != nil {
		return goerr.Wrap(err, "failed to encode tracked repositories")
	}
	return nil
}

// ImportRepositories reads a JSON array written by ExportRepositories and
// stores every record, replacing existing ones. Nothing is stored unless all
// records are valid.
func (x *UseCase) ImportRepositories(ctx context.Context, r io.Reader) (int, error) {
	store, err := x.store()
	if err != nil {
		return 0, err
	}

	var repos []*model.TrackedRepository
	if err := json.NewDecoder(r).Decode(&repos); err != nil {
		return 0, goerr.Wrap(types.ErrValidationFailed, "failed to decode tracked repositories", goerr.V("error", err.Error()))
	}

	now := logging.CtxTime(ctx)
	seen := map[types.RepoName]struct{}{}
	for i, repo := range repos {
		if repo == nil {
			return 0, goerr.Wrap(types.ErrValidationFailed, "null record", goerr.V("index", i))
		}
		if _, ok := seen[repo.Name]; ok {
			return 0, goerr.Wrap(types.ErrValidationFailed, "duplicated name", goerr.V("name", repo.Name))
		}
		seen[repo.Name] = struct{}{}

		if repo.CreatedAt.IsZero() {
			repo.CreatedAt = now
		}
		repo.UpdatedAt = now
		if err := repo.Validate(); err != nil {
			return 0, goerr.Wrap(err, "invalid tracked repository", goerr.V("index", i))
		}
	}

	for _, repo := range repos {
		if err := store.PutRepository(ctx, repo); err != nil {
			return 0, goerr.Wrap(err, "failed to put tracked repository", goerr.V("name", repo.Name))
		}
	}

	logging.From(ctx).Info("imported tracked repositories", slog.Int("count", len(repos)))
	return len(repos), nil
}

func completeCheckout(ctx context.Context, repo *model.TrackedRepository) error {
	if repo.CheckoutPath == "" {
		return nil
	}

	path, err := expandPath(repo.CheckoutPath)
	if err != nil {
		return err
	}
	repo.CheckoutPath = path

	if repo.ForkOwner != "" && repo.Upstream.Owner != "" && repo.Upstream.Repo != "" {
		return nil
	}

	remotes, err := gitrepo.DetectRemotes(path)
	if err != nil {
		return goerr.Wrap(err, "failed to detect remotes of checkout, set fork owner and upstream explicitly")
	}
	if repo.ForkOwner == "" {
		repo.ForkOwner = remotes.ForkOwner
	}
	if repo.Upstream.Owner == "" && repo.Upstream.Repo == "" {
		repo.Upstream.Owner = remotes.UpstreamOwner
		repo.Upstream.Repo = remotes.UpstreamRepo
	}

	logging.From(ctx).Debug("detected remotes of checkout",
		slog.String("path", path),
		slog.String("fork_owner", repo.ForkOwner),
		slog.String("upstream", repo.Upstream.Owner+"/"+repo.Upstream.Repo),
	)
	return nil
}

// expandPath resolves "~/" and makes path absolute.
func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", goerr.Wrap(err, "failed to get home directory")
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get absolute path", goerr.V("path", path))
	}
	return abs, nil
}
