package resolver_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/brewup/pkg/domain/mock"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/repository/memory"
	"github.com/m-mizutani/brewup/pkg/resolver"
	"github.com/m-mizutani/gt"
)

var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testRepo() *model.TrackedRepository {
	return &model.TrackedRepository{
		Name:     "homebrew/php/example",
		Owner:    "acme",
		Repo:     "example",
		Strategy: types.StrategyTagTarball,
	}
}

func githubWithTags(tags []*model.Tag, dates map[types.CommitID]time.Time) *mock.GitHubMock {
	return &mock.GitHubMock{
		ListTagsFunc: func(ctx context.Context, owner, repo string) ([]*model.Tag, error) {
			return tags, nil
		},
		GetCommitDateFunc: func(ctx context.Context, owner, repo string, commitID types.CommitID) (time.Time, error) {
			ts, ok := dates[commitID]
			if !ok {
				return time.Time{}, errors.New("unknown commit")
			}
			return ts, nil
		},
	}
}

func TestTagHistoryLatest(t *testing.T) {
	ctx := context.Background()

	t.Run("newest commit date wins regardless of API order", func(t *testing.T) {
		gh := githubWithTags(
			[]*model.Tag{
				{Name: "v1.10.0", CommitID: "c1"},
				{Name: "v2.0.0", CommitID: "c2"},
				{Name: "v1.9.0", CommitID: "c3"},
			},
			map[types.CommitID]time.Time{
				"c1": baseTime.Add(1 * time.Hour),
				"c2": baseTime.Add(3 * time.Hour),
				"c3": baseTime,
			},
		)
		history := resolver.NewTagHistory(gh, memory.New())

		tag := gt.R1(history.Latest(ctx, testRepo())).NoError(t)
		gt.V(t, tag.Name).Equal("v2.0.0")
		gt.V(t, tag.CommittedAt).Equal(baseTime.Add(3 * time.Hour))
	})

	t.Run("no tag returns nil", func(t *testing.T) {
		gh := githubWithTags(nil, nil)
		history := resolver.NewTagHistory(gh, memory.New())

		tag := gt.R1(history.Latest(ctx, testRepo())).NoError(t)
		gt.V(t, tag == nil).Equal(true)
		gt.V(t, len(gh.GetCommitDateCalls())).Equal(0)
	})

	t.Run("cached commits are not fetched again", func(t *testing.T) {
		cache := memory.New()
		gt.NoError(t, cache.PutCommits(ctx, []*model.CommitRecord{
			{RepoName: "homebrew/php/example", CommitID: "c1", CommittedAt: baseTime},
			{RepoName: "homebrew/php/example", CommitID: "c2", CommittedAt: baseTime.Add(time.Hour)},
		}))

		gh := githubWithTags(
			[]*model.Tag{{Name: "v1.0.0", CommitID: "c1"}, {Name: "v1.1.0", CommitID: "c2"}},
			nil,
		)
		history := resolver.NewTagHistory(gh, cache)

		tag := gt.R1(history.Latest(ctx, testRepo())).NoError(t)
		gt.V(t, tag.Name).Equal("v1.1.0")
		gt.V(t, len(gh.GetCommitDateCalls())).Equal(0)
	})

	t.Run("fetched commit dates are written back to cache", func(t *testing.T) {
		cache := memory.New()
		gh := githubWithTags(
			[]*model.Tag{{Name: "v1.0.0", CommitID: "c1"}},
			map[types.CommitID]time.Time{"c1": baseTime},
		)
		history := resolver.NewTagHistory(gh, cache)

		_ = gt.R1(history.Latest(ctx, testRepo())).NoError(t)
		gt.V(t, len(gh.GetCommitDateCalls())).Equal(1)

		_ = gt.R1(history.Latest(ctx, testRepo())).NoError(t)
		gt.V(t, len(gh.GetCommitDateCalls())).Equal(1)

		cached := gt.R1(cache.GetCommits(ctx, "homebrew/php/example", []types.CommitID{"c1"})).NoError(t)
		gt.V(t, cached["c1"].CommittedAt).Equal(baseTime)
	})

	t.Run("tags sharing a commit are fetched once", func(t *testing.T) {
		gh := githubWithTags(
			[]*model.Tag{{Name: "v1.0.0", CommitID: "c1"}, {Name: "1.0.0", CommitID: "c1"}},
			map[types.CommitID]time.Time{"c1": baseTime},
		)
		history := resolver.NewTagHistory(gh, memory.New())

		tag := gt.R1(history.Latest(ctx, testRepo())).NoError(t)
		gt.V(t, tag.Name).Equal("v1.0.0")
		gt.V(t, len(gh.GetCommitDateCalls())).Equal(1)
	})

	t.Run("commit date failure aborts", func(t *testing.T) {
		gh := githubWithTags(
			[]*model.Tag{{Name: "v1.0.0", CommitID: "c1"}},
			map[types.CommitID]time.Time{},
		)
		history := resolver.NewTagHistory(gh, memory.New())

		_, err := history.Latest(ctx, testRepo())
		gt.Error(t, err)
	})
}

func TestTagHistoryChunk(t *testing.T) {
	ctx := context.Background()

	var tags []*model.Tag
	dates := map[types.CommitID]time.Time{}
	for i := range 40 {
		id := types.CommitID(fmt.Sprintf("c%02d", i))
		tags = append(tags, &model.Tag{Name: fmt.Sprintf("v1.0.%d", i), CommitID: id})
		dates[id] = baseTime.Add(time.Duration(i) * time.Minute)
	}

	var inFlight, maxInFlight atomic.Int32
	var mu sync.Mutex
	gh := &mock.GitHubMock{
		ListTagsFunc: func(ctx context.Context, owner, repo string) ([]*model.Tag, error) {
			return tags, nil
		},
		GetCommitDateFunc: func(ctx context.Context, owner, repo string, commitID types.CommitID) (time.Time, error) {
			n := inFlight.Add(1)
			mu.Lock()
			if n > maxInFlight.Load() {
				maxInFlight.Store(n)
			}
			mu.Unlock()
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return dates[commitID], nil
		},
	}

	cache := memory.New()
	history := resolver.NewTagHistory(gh, cache)
	tag := gt.R1(history.Latest(ctx, testRepo())).NoError(t)

	gt.V(t, tag.Name).Equal("v1.0.39")
	gt.V(t, len(gh.GetCommitDateCalls())).Equal(40)
	gt.True(t, maxInFlight.Load() <= resolver.DefaultChunkSize)
	gt.True(t, maxInFlight.Load() > 1)
}
