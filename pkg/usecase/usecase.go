package usecase

import (
	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/infra"
	"github.com/m-mizutani/brewup/pkg/resolver"
	"github.com/m-mizutani/brewup/pkg/utils/safe"
	"github.com/m-mizutani/brewup/pkg/workflow"
)

// DefaultConcurrency is the number of repositories checked at once by CheckAll.
const DefaultConcurrency = 4

type UseCase struct {
	clients      *infra.Clients
	chunkSize    int
	workflowOpts []workflow.Option

	// one check at a time per tracked repository
	checkLocks safe.KeyedMutex
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithChunkSize sets the number of commit date requests in flight at once.
func WithChunkSize(n int) Option {
	return func(x *UseCase) {
		x.chunkSize = n
	}
}

func WithWorkflowOptions(options ...workflow.Option) Option {
	return func(x *UseCase) {
		x.workflowOpts = append(x.workflowOpts, options...)
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	x := &UseCase{
		clients:   clients,
		chunkSize: resolver.DefaultChunkSize,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}
