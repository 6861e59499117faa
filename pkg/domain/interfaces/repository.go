package interfaces

import (
	"context"

	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
)

//go:generate moq -out ../mock/repository_mock.go -pkg mock . TrackedRepositoryStore CommitCache

// TrackedRepositoryStore keeps TrackedRepository records by name.
type TrackedRepositoryStore interface {
	PutRepository(ctx context.Context, repo *model.TrackedRepository) error
	GetRepository(ctx context.Context, name types.RepoName) (*model.TrackedRepository, error)
	ListRepositories(ctx context.Context) ([]*model.TrackedRepository, error)
	DeleteRepository(ctx context.Context, name types.RepoName) error
}

// CommitCache is the write-once commit date cache.
type CommitCache interface {
	// GetCommits returns cached records among commitIDs. Missing ids are simply absent.
	GetCommits(ctx context.Context, name types.RepoName, commitIDs []types.CommitID) (map[types.CommitID]*model.CommitRecord, error)
	// PutCommits stores records that are not cached yet. Existing entries are kept as is.
	PutCommits(ctx context.Context, records []*model.CommitRecord) error
}

type Repository interface {
	TrackedRepositoryStore
	CommitCache
}
