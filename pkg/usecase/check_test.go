package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/brewup/pkg/domain/mock"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/infra"
	"github.com/m-mizutani/brewup/pkg/repository"
	"github.com/m-mizutani/brewup/pkg/utils/testutil"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestCheckRepository(t *testing.T) {
	t.Run("new version is published and recorded", func(t *testing.T) {
		e := newEnv(t)
		ctx := newContext()
		repo := e.putExample(t, "1.0.0", exampleFormula)

		result := gt.R1(e.uc.CheckRepository(ctx, repo.Name)).NoError(t)
		gt.V(t, result.Decision).Equal(model.NewVersion("1.1.0"))
		gt.V(t, result.PreviousVersion).Equal("1.0.0")
		gt.V(t, result.Release.Archive.URL).Equal("https://github.com/acme/example/archive/v1.1.0.tar.gz")
		gt.V(t, result.Publish.State).Equal(model.StateDone)

		commits := e.vcs.CommitCalls()
		gt.A(t, commits).Length(1)
		gt.V(t, commits[0].Message).Equal("example 1.1.0")

		pushes := e.vcs.PushCalls()
		gt.A(t, pushes).Length(1)
		gt.V(t, pushes[0].Branch).Equal(types.BranchName("example-1.1.0"))
		gt.V(t, pushes[0].Remote).Equal("origin")

		prs := e.github.CreatePullRequestCalls()
		gt.A(t, prs).Length(1)
		gt.V(t, prs[0].Input.Title).Equal("example 1.1.0")
		gt.V(t, prs[0].Input.Head).Equal("bot:example-1.1.0")
		gt.V(t, prs[0].Input.Base).Equal("master")
		gt.V(t, len(e.notifier.NotifyReleaseCalls())).Equal(1)

		body := testutil.ReadFile(t, repo.DefinitionPath())
		gt.True(t, strings.Contains(body, `url "https://github.com/acme/example/archive/v1.1.0.tar.gz"`))
		gt.True(t, strings.Contains(body, `sha256 "`+strings.Repeat("ab", 32)+`"`))

		stored := gt.R1(e.store.GetRepository(ctx, repo.Name)).NoError(t)
		gt.V(t, stored.CurrentVersion).Equal("1.1.0")
		gt.V(t, stored.ArchiveURL).Equal("https://github.com/acme/example/archive/v1.1.0.tar.gz")
		gt.V(t, stored.ArchiveHash).Equal(exampleHash)
		gt.V(t, stored.PullRequestURL).Equal("https://github.com/acme/homebrew-tap/pull/8")
		gt.V(t, stored.CheckedAt).Equal(now)
	})

	t.Run("equal version does not run the workflow", func(t *testing.T) {
		e := newEnv(t)
		ctx := newContext()
		repo := e.putExample(t, "1.1.0", exampleFormula)

		result := gt.R1(e.uc.CheckRepository(ctx, repo.Name)).NoError(t)
		gt.V(t, result.Decision.Kind).Equal(model.DecisionNoChange)
		gt.V(t, result.Release).Equal(nil)
		gt.V(t, len(e.vcs.CheckoutCalls())).Equal(0)
		gt.V(t, len(e.fetcher.HashCalls())).Equal(0)
		gt.V(t, len(e.notifier.NotifyReleaseCalls())).Equal(0)

		stored := gt.R1(e.store.GetRepository(ctx, repo.Name)).NoError(t)
		gt.V(t, stored.CurrentVersion).Equal("1.1.0")
		gt.V(t, stored.CheckedAt).Equal(now)
	})

	t.Run("primary without archive lines is rolled back", func(t *testing.T) {
		e := newEnv(t)
		ctx := newContext()
		repo := e.putExample(t, "1.0.0", "class Example < Formula\nend\n")

		result := gt.R1(e.uc.CheckRepository(ctx, repo.Name)).NoError(t)
		gt.True(t, errors.Is(result.Err, types.ErrNothingToCommit))
		gt.V(t, result.Publish.State).Equal(model.StateRolledBack)
		gt.V(t, len(e.vcs.CommitCalls())).Equal(0)
		gt.V(t, len(e.vcs.PushCalls())).Equal(0)
		gt.V(t, len(e.vcs.DeleteBranchCalls())).Equal(1)
		gt.V(t, len(e.github.CreatePullRequestCalls())).Equal(0)

		stored := gt.R1(e.store.GetRepository(ctx, repo.Name)).NoError(t)
		gt.V(t, stored.CurrentVersion).Equal("1.1.0")
		gt.V(t, stored.PullRequestURL).Equal("")
	})

	t.Run("open pull request of previous version is closed", func(t *testing.T) {
		e := newEnv(t)
		ctx := newContext()
		repo := e.putExample(t, "1.0.0", exampleFormula)
		repo.PullRequestURL = "https://github.com/acme/homebrew-tap/pull/7"
		gt.NoError(t, e.store.PutRepository(ctx, repo))

		result := gt.R1(e.uc.CheckRepository(ctx, repo.Name)).NoError(t)
		gt.V(t, result.Publish.ClosedPullRequestURL).Equal("https://github.com/acme/homebrew-tap/pull/7")
		closed := e.github.ClosePullRequestCalls()
		gt.A(t, closed).Length(1)
		gt.V(t, closed[0].Number).Equal(7)
		gt.V(t, closed[0].Owner).Equal("acme")
		gt.V(t, closed[0].Repo).Equal("homebrew-tap")

		stored := gt.R1(e.store.GetRepository(ctx, repo.Name)).NoError(t)
		gt.V(t, stored.PullRequestURL).Equal("https://github.com/acme/homebrew-tap/pull/8")
	})

	t.Run("repository without checkout is only recorded", func(t *testing.T) {
		e := newEnv(t)
		ctx := newContext()
		repo := e.putExample(t, "1.0.0", "")

		result := gt.R1(e.uc.CheckRepository(ctx, repo.Name)).NoError(t)
		gt.True(t, result.Decision.IsNew())
		gt.V(t, result.Publish).Equal(nil)
		gt.V(t, len(e.vcs.CheckoutCalls())).Equal(0)

		stored := gt.R1(e.store.GetRepository(ctx, repo.Name)).NoError(t)
		gt.V(t, stored.CurrentVersion).Equal("1.1.0")
	})

	t.Run("cached commit dates are not fetched again", func(t *testing.T) {
		e := newEnv(t)
		ctx := newContext()
		repo := e.putExample(t, "1.1.0", "")

		gt.R1(e.uc.CheckRepository(ctx, repo.Name)).NoError(t)
		gt.V(t, len(e.github.GetCommitDateCalls())).Equal(2)

		gt.R1(e.uc.CheckRepository(ctx, repo.Name)).NoError(t)
		gt.V(t, len(e.github.GetCommitDateCalls())).Equal(2)
	})

	t.Run("repository without tag is stamped only", func(t *testing.T) {
		e := newEnv(t)
		e.github.ListTagsFunc = func(ctx context.Context, owner, repo string) ([]*model.Tag, error) {
			return nil, nil
		}
		ctx := newContext()
		repo := e.putExample(t, "", "")

		result := gt.R1(e.uc.CheckRepository(ctx, repo.Name)).NoError(t)
		gt.V(t, result.Decision.Kind).Equal(model.DecisionNoChange)

		stored := gt.R1(e.store.GetRepository(ctx, repo.Name)).NoError(t)
		gt.V(t, stored.CurrentVersion).Equal("")
		gt.V(t, stored.CheckedAt).Equal(now)
	})

	t.Run("unavailable archive leaves record untouched", func(t *testing.T) {
		e := newEnv(t)
		e.fetcher.HashFunc = func(ctx context.Context, url string) (string, error) {
			return "", goerr.Wrap(types.ErrArchiveUnavailable, "unexpected status", goerr.V("status", 404))
		}
		ctx := newContext()
		repo := e.putExample(t, "1.0.0", exampleFormula)

		result, err := e.uc.CheckRepository(ctx, repo.Name)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrArchiveUnavailable))
		gt.True(t, errors.Is(result.Err, types.ErrArchiveUnavailable))
		gt.V(t, len(e.vcs.CheckoutCalls())).Equal(0)

		stored := gt.R1(e.store.GetRepository(ctx, repo.Name)).NoError(t)
		gt.V(t, stored.CurrentVersion).Equal("1.0.0")
		gt.True(t, stored.CheckedAt.IsZero())
	})

	t.Run("push failure does not record the version", func(t *testing.T) {
		e := newEnv(t)
		e.vcs.PushFunc = func(ctx context.Context, path, remote string, branch types.BranchName) error {
			return goerr.Wrap(types.ErrTransientIO, "git push failed")
		}
		ctx := newContext()
		repo := e.putExample(t, "1.0.0", exampleFormula)

		result, err := e.uc.CheckRepository(ctx, repo.Name)
		gt.True(t, errors.Is(err, types.ErrTransientIO))
		gt.V(t, result.Publish.State).Equal(model.StateCommitted)

		stored := gt.R1(e.store.GetRepository(ctx, repo.Name)).NoError(t)
		gt.V(t, stored.CurrentVersion).Equal("1.0.0")
	})

	t.Run("notification failure does not stop publishing", func(t *testing.T) {
		e := newEnv(t)
		e.notifier.NotifyReleaseFunc = func(ctx context.Context, repo *model.TrackedRepository, release *model.Release) error {
			return goerr.New("webhook is down")
		}
		ctx := newContext()
		repo := e.putExample(t, "1.0.0", exampleFormula)

		result := gt.R1(e.uc.CheckRepository(ctx, repo.Name)).NoError(t)
		gt.V(t, result.Publish.State).Equal(model.StateDone)
	})

	t.Run("concurrent checks publish a release once", func(t *testing.T) {
		e := newEnv(t)
		listTags := e.github.ListTagsFunc
		e.github.ListTagsFunc = func(ctx context.Context, owner, repo string) ([]*model.Tag, error) {
			time.Sleep(20 * time.Millisecond)
			return listTags(ctx, owner, repo)
		}
		ctx := newContext()
		repo := e.putExample(t, "1.0.0", exampleFormula)
		repo.PullRequestURL = "https://github.com/acme/homebrew-tap/pull/7"
		gt.NoError(t, e.store.PutRepository(ctx, repo))

		results := make([]*model.CheckResult, 2)
		var wg sync.WaitGroup
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				result, err := e.uc.CheckRepository(ctx, repo.Name)
				gt.NoError(t, err)
				results[i] = result
			}()
		}
		wg.Wait()

		var published int
		for _, r := range results {
			if r.Decision.IsNew() {
				published++
			} else {
				gt.V(t, r.Decision.Kind).Equal(model.DecisionNoChange)
			}
		}
		gt.V(t, published).Equal(1)
		gt.V(t, len(e.notifier.NotifyReleaseCalls())).Equal(1)
		gt.V(t, len(e.vcs.CreateBranchCalls())).Equal(1)
		gt.V(t, len(e.github.CreatePullRequestCalls())).Equal(1)

		stored := gt.R1(e.store.GetRepository(ctx, repo.Name)).NoError(t)
		gt.V(t, stored.CurrentVersion).Equal("1.1.0")
		gt.V(t, stored.PullRequestURL).Equal("https://github.com/acme/homebrew-tap/pull/8")
	})

	t.Run("unknown repository is not found", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.uc.CheckRepository(newContext(), "no/such/repo")
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("check history is inserted to BigQuery", func(t *testing.T) {
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return nil, nil
			},
			CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error {
				return nil
			},
			InsertFunc: func(ctx context.Context, schema bigquery.Schema, data any) error {
				return nil
			},
		}
		e := newEnv(t, infra.WithBigQuery(mockBQ))
		ctx := newContext()
		repo := e.putExample(t, "1.0.0", "")

		gt.R1(e.uc.CheckRepository(ctx, repo.Name)).NoError(t)
		inserts := mockBQ.InsertCalls()
		gt.A(t, inserts).Length(1)
		record, ok := inserts[0].Data.(*model.CheckHistoryRecord)
		gt.True(t, ok)
		gt.V(t, record.RepoName).Equal("acme/tap/example")
		gt.V(t, record.LatestVersion).Equal("1.1.0")
		gt.V(t, record.Decision).Equal(string(model.DecisionNewVersion))
		gt.V(t, record.Timestamp).Equal(now.UnixMicro())
	})

	t.Run("BigQuery failure does not fail the check", func(t *testing.T) {
		mockBQ := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return nil, goerr.New("permission denied")
			},
		}
		e := newEnv(t, infra.WithBigQuery(mockBQ))
		repo := e.putExample(t, "1.0.0", "")

		gt.R1(e.uc.CheckRepository(newContext(), repo.Name)).NoError(t)
		gt.V(t, len(mockBQ.InsertCalls())).Equal(0)
	})
}

func TestCheckAll(t *testing.T) {
	putRepo := func(t *testing.T, e *env, name types.RepoName, owner string, enabled bool) {
		t.Helper()
		gt.NoError(t, e.store.PutRepository(context.Background(), &model.TrackedRepository{
			Name:     name,
			Owner:    owner,
			Repo:     "tool",
			Strategy: types.StrategyTagTarballPrefixV,
			Enabled:  enabled,
		}))
	}

	t.Run("only enabled repositories are checked", func(t *testing.T) {
		e := newEnv(t)
		putRepo(t, e, "a/tool", "a", true)
		putRepo(t, e, "b/tool", "b", true)
		putRepo(t, e, "c/tool", "c", false)

		results := gt.R1(e.uc.CheckAll(newContext(), model.CheckOptions{Concurrency: 2})).NoError(t)
		gt.V(t, len(results)).Equal(2)
		for _, r := range results {
			gt.True(t, r.Decision.IsNew())
		}
	})

	t.Run("named repository is checked even if disabled", func(t *testing.T) {
		e := newEnv(t)
		putRepo(t, e, "a/tool", "a", true)
		putRepo(t, e, "c/tool", "c", false)

		results := gt.R1(e.uc.CheckAll(newContext(), model.CheckOptions{Name: "c/tool"})).NoError(t)
		gt.A(t, results).Length(1)
		gt.V(t, results[0].Name).Equal(types.RepoName("c/tool"))
	})

	t.Run("failure of one repository does not stop others", func(t *testing.T) {
		e := newEnv(t)
		e.github.ListTagsFunc = func(ctx context.Context, owner, repo string) ([]*model.Tag, error) {
			if owner == "b" {
				return nil, goerr.Wrap(types.ErrTransientIO, "timeout")
			}
			return []*model.Tag{{Name: "v1.0.0", CommitID: "c1"}}, nil
		}
		putRepo(t, e, "a/tool", "a", true)
		putRepo(t, e, "b/tool", "b", true)
		putRepo(t, e, "d/tool", "d", true)

		results, err := e.uc.CheckAll(newContext(), model.CheckOptions{})
		gt.Error(t, err)
		gt.V(t, len(results)).Equal(3)

		var failed int
		for _, r := range results {
			if r.Err != nil {
				failed++
				gt.V(t, r.Name).Equal(types.RepoName("b/tool"))
			}
		}
		gt.V(t, failed).Equal(1)

		stored := gt.R1(e.store.GetRepository(context.Background(), "d/tool")).NoError(t)
		gt.V(t, stored.CurrentVersion).Equal("1.0.0")
	})
}

func TestFindRepositories(t *testing.T) {
	e := newEnv(t)
	e.putExample(t, "", "")

	t.Run("match is case insensitive", func(t *testing.T) {
		repos := gt.R1(e.uc.FindRepositories(context.Background(), "ACME", "Example")).NoError(t)
		gt.V(t, len(repos)).Equal(1)
	})

	t.Run("other repository does not match", func(t *testing.T) {
		repos := gt.R1(e.uc.FindRepositories(context.Background(), "acme", "other")).NoError(t)
		gt.V(t, len(repos)).Equal(0)
	})
}
