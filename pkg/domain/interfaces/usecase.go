package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
)

type UseCase interface {
	CheckRepository(ctx context.Context, name types.RepoName) (*model.CheckResult, error)
	CheckAll(ctx context.Context, opts model.CheckOptions) ([]*model.CheckResult, error)
	FindRepositories(ctx context.Context, owner, repo string) ([]*model.TrackedRepository, error)
}
