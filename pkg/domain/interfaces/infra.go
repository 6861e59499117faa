package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHub VCS ArtifactFetcher Notifier

import (
	"context"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// GitHub is the upstream release API and the remote pull request API.
type GitHub interface {
	ListTags(ctx context.Context, owner, repo string) ([]*model.Tag, error)
	GetCommitDate(ctx context.Context, owner, repo string, commitID types.CommitID) (time.Time, error)

	GetPullRequest(ctx context.Context, owner, repo string, number int) (*model.PullRequest, error)
	ClosePullRequest(ctx context.Context, owner, repo string, number int) error
	CreatePullRequest(ctx context.Context, input *model.NewPullRequest) (*model.PullRequest, error)
}

// VCS runs local version control operations against the working tree at path.
// Every failure is reported as an error.
type VCS interface {
	Checkout(ctx context.Context, path string, branch types.BranchName) error
	CreateBranch(ctx context.Context, path string, branch types.BranchName) error
	DeleteBranch(ctx context.Context, path string, branch types.BranchName) error
	AddAll(ctx context.Context, path string) error
	Commit(ctx context.Context, path, message string) (types.CommitID, error)
	Push(ctx context.Context, path, remote string, branch types.BranchName) error

	// SyncUpstream fast-forwards base to upstream/base, registering the
	// upstream remote with upstreamURL when it is missing, and pushes base to remote.
	SyncUpstream(ctx context.Context, path, remote, upstreamURL string, base types.BranchName) error
}

// ArtifactFetcher downloads url and returns "sha256:<hex>" of its body.
type ArtifactFetcher interface {
	Hash(ctx context.Context, url string) (string, error)
}

type Notifier interface {
	NotifyRelease(ctx context.Context, repo *model.TrackedRepository, release *model.Release) error
}
