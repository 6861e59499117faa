package memory

import (
	"context"

	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

func (r *Repository) GetCommits(ctx context.Context, name types.RepoName, commitIDs []types.CommitID) (map[types.CommitID]*model.CommitRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make(map[types.CommitID]*model.CommitRecord)
	for _, id := range commitIDs {
		if rec, ok := r.commits[commitKey{name: name, id: id}]; ok {
			cpy := *rec
			found[id] = &cpy
		}
	}
	return found, nil
}

func (r *Repository) PutCommits(ctx context.Context, records []*model.CommitRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range records {
		if rec == nil || rec.RepoName == "" || rec.CommitID == "" {
			return goerr.Wrap(repository.ErrInvalidInput, "commit record lacks repo name or commit id")
		}

		key := commitKey{name: rec.RepoName, id: rec.CommitID}
		if _, exists := r.commits[key]; exists {
			continue
		}
		cpy := *rec
		r.commits[key] = &cpy
	}
	return nil
}
