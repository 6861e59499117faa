package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/repository"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for Repository
// This is the main entry point for testing any Repository implementation
func TestAll(t *testing.T, repo interfaces.Repository) {
	t.Run("TrackedRepositoryCRUD", func(t *testing.T) {
		TestTrackedRepositoryCRUD(t, repo)
	})
	t.Run("TrackedRepositoryNotFound", func(t *testing.T) {
		TestTrackedRepositoryNotFound(t, repo)
	})
	t.Run("CommitCache", func(t *testing.T) {
		TestCommitCache(t, repo)
	})
	t.Run("CommitCacheWriteOnce", func(t *testing.T) {
		TestCommitCacheWriteOnce(t, repo)
	})
}

func newName(prefix string) types.RepoName {
	return types.RepoName(fmt.Sprintf("homebrew/%s/%s", prefix, uuid.New().String()[:8]))
}

// TestTrackedRepositoryCRUD tests put, get, list and delete of TrackedRepository
func TestTrackedRepositoryCRUD(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	record := &model.TrackedRepository{
		Name:             newName("crud"),
		Owner:            "FriendsOfPHP",
		Repo:             "PHP-CS-Fixer",
		Strategy:         types.StrategyReleaseAssetPrefixV,
		CurrentVersion:   "2.0.0",
		ArchiveURL:       "https://example.com/php-cs-fixer.phar",
		ArchiveHash:      "sha256:aaaa",
		CheckoutPath:     "/tmp/homebrew-php",
		Upstream:         model.Upstream{Owner: "Homebrew", Repo: "homebrew-php"},
		ForkOwner:        "brewup-bot",
		RevisionTargets:  []string{"php71-xdebug"},
		DependentTargets: []string{"php-cs-fixer@2"},
		Enabled:          true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	gt.NoError(t, repo.PutRepository(ctx, record))

	got := gt.R1(repo.GetRepository(ctx, record.Name)).NoError(t)
	gt.V(t, got.Name).Equal(record.Name)
	gt.V(t, got.Owner).Equal(record.Owner)
	gt.V(t, got.Repo).Equal(record.Repo)
	gt.V(t, got.Strategy).Equal(record.Strategy)
	gt.V(t, got.CurrentVersion).Equal("2.0.0")
	gt.V(t, got.ArchiveHash).Equal("sha256:aaaa")
	gt.V(t, got.Upstream.Owner).Equal("Homebrew")
	gt.V(t, got.ForkOwner).Equal("brewup-bot")
	gt.V(t, got.RevisionTargets).Equal([]string{"php71-xdebug"})
	gt.V(t, got.DependentTargets).Equal([]string{"php-cs-fixer@2"})
	gt.True(t, got.Enabled)
	gt.True(t, got.CreatedAt.Equal(now))

	// Update replaces the whole record
	record.CurrentVersion = "2.1.0"
	record.PullRequestURL = "https://github.com/Homebrew/homebrew-php/pull/1"
	gt.NoError(t, repo.PutRepository(ctx, record))

	got = gt.R1(repo.GetRepository(ctx, record.Name)).NoError(t)
	gt.V(t, got.CurrentVersion).Equal("2.1.0")
	gt.V(t, got.PullRequestURL).Equal("https://github.com/Homebrew/homebrew-php/pull/1")

	repos := gt.R1(repo.ListRepositories(ctx)).NoError(t)
	gt.A(t, repos).Any(func(v *model.TrackedRepository) bool {
		return v.Name == record.Name
	})

	gt.NoError(t, repo.DeleteRepository(ctx, record.Name))
	_, err := repo.GetRepository(ctx, record.Name)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestTrackedRepositoryNotFound tests lookups of unknown names
func TestTrackedRepositoryNotFound(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()
	name := newName("missing")

	_, err := repo.GetRepository(ctx, name)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	err = repo.DeleteRepository(ctx, name)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestCommitCache tests that stored commit dates are returned and unknown ids are absent
func TestCommitCache(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()
	name := newName("commit")
	ts := time.Date(2017, 1, 2, 3, 4, 5, 0, time.UTC)

	records := []*model.CommitRecord{
		{RepoName: name, CommitID: "aaaa", CommittedAt: ts},
		{RepoName: name, CommitID: "bbbb", CommittedAt: ts.Add(time.Hour)},
	}
	gt.NoError(t, repo.PutCommits(ctx, records))

	got := gt.R1(repo.GetCommits(ctx, name, []types.CommitID{"aaaa", "bbbb", "cccc"})).NoError(t)
	gt.V(t, len(got)).Equal(2)
	gt.True(t, got["aaaa"].CommittedAt.Equal(ts))
	gt.True(t, got["bbbb"].CommittedAt.Equal(ts.Add(time.Hour)))
	_, ok := got["cccc"]
	gt.False(t, ok)

	// Same commit id under another name is a different entry
	other := gt.R1(repo.GetCommits(ctx, newName("commit"), []types.CommitID{"aaaa"})).NoError(t)
	gt.V(t, len(other)).Equal(0)

	empty := gt.R1(repo.GetCommits(ctx, name, nil)).NoError(t)
	gt.V(t, len(empty)).Equal(0)

	gt.NoError(t, repo.PutCommits(ctx, nil))
}

// TestCommitCacheWriteOnce tests that an existing entry is never overwritten
func TestCommitCacheWriteOnce(t *testing.T, repo interfaces.Repository) {
	ctx := context.Background()
	name := newName("once")
	ts := time.Date(2017, 1, 2, 3, 4, 5, 0, time.UTC)

	gt.NoError(t, repo.PutCommits(ctx, []*model.CommitRecord{
		{RepoName: name, CommitID: "aaaa", CommittedAt: ts},
	}))
	gt.NoError(t, repo.PutCommits(ctx, []*model.CommitRecord{
		{RepoName: name, CommitID: "aaaa", CommittedAt: ts.Add(24 * time.Hour)},
		{RepoName: name, CommitID: "bbbb", CommittedAt: ts},
	}))

	got := gt.R1(repo.GetCommits(ctx, name, []types.CommitID{"aaaa", "bbbb"})).NoError(t)
	gt.V(t, len(got)).Equal(2)
	gt.True(t, got["aaaa"].CommittedAt.Equal(ts))
}
