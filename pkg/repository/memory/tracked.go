package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

func (r *Repository) PutRepository(ctx context.Context, repo *model.TrackedRepository) error {
	if repo == nil || repo.Name == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "repository name is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.repos[repo.Name] = repo.Copy()
	return nil
}

func (r *Repository) GetRepository(ctx context.Context, name types.RepoName) (*model.TrackedRepository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repo, exists := r.repos[name]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("name", name),
		)
	}

	return repo.Copy(), nil
}

func (r *Repository) ListRepositories(ctx context.Context) ([]*model.TrackedRepository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repos := make([]*model.TrackedRepository, 0, len(r.repos))
	for _, repo := range r.repos {
		repos = append(repos, repo.Copy())
	}
	sort.Slice(repos, func(i, j int) bool {
		return repos[i].Name < repos[j].Name
	})

	return repos, nil
}

func (r *Repository) DeleteRepository(ctx context.Context, name types.RepoName) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.repos[name]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("name", name),
		)
	}

	delete(r.repos, name)
	return nil
}
