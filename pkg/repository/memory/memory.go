package memory

import (
	"sync"

	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
)

type commitKey struct {
	name types.RepoName
	id   types.CommitID
}

// Repository keeps everything in process memory. It is used for tests and
// single shot runs without persistent storage.
type Repository struct {
	mu      sync.RWMutex
	repos   map[types.RepoName]*model.TrackedRepository
	commits map[commitKey]*model.CommitRecord
}

var _ interfaces.Repository = (*Repository)(nil)

// New creates a new in-memory repository
func New() *Repository {
	return &Repository{
		repos:   make(map[types.RepoName]*model.TrackedRepository),
		commits: make(map[commitKey]*model.CommitRecord),
	}
}
