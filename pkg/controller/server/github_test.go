package server_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/brewup/pkg/controller/server"
	"github.com/m-mizutani/brewup/pkg/domain/mock"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestGitHubEventToCheckTarget(t *testing.T) {
	repo := &github.Repository{
		Owner: &github.User{Login: github.Ptr("composer")},
		Name:  github.Ptr("composer"),
	}

	t.Run("published release returns target", func(t *testing.T) {
		event := &github.ReleaseEvent{
			Action:  github.Ptr("published"),
			Release: &github.RepositoryRelease{TagName: github.Ptr("2.8.0")},
			Repo:    repo,
		}
		result := server.GitHubEventToCheckTargetForTest(event)
		gt.V(t, result).NotEqual(nil)
		gt.V(t, result.Owner).Equal("composer")
		gt.V(t, result.Repo).Equal("composer")
		gt.V(t, result.Tag).Equal("2.8.0")
	})

	t.Run("release event with other action returns nil", func(t *testing.T) {
		event := &github.ReleaseEvent{
			Action: github.Ptr("edited"),
			Repo:   repo,
		}
		gt.V(t, server.GitHubEventToCheckTargetForTest(event)).Equal(nil)
	})

	t.Run("tag creation returns target", func(t *testing.T) {
		event := &github.CreateEvent{
			Ref:     github.Ptr("v1.2.0"),
			RefType: github.Ptr("tag"),
			Repo:    repo,
		}
		result := server.GitHubEventToCheckTargetForTest(event)
		gt.V(t, result).NotEqual(nil)
		gt.V(t, result.Tag).Equal("v1.2.0")
	})

	t.Run("branch creation returns nil", func(t *testing.T) {
		event := &github.CreateEvent{
			Ref:     github.Ptr("feature"),
			RefType: github.Ptr("branch"),
			Repo:    repo,
		}
		gt.V(t, server.GitHubEventToCheckTargetForTest(event)).Equal(nil)
	})

	t.Run("ping event returns nil", func(t *testing.T) {
		gt.V(t, server.GitHubEventToCheckTargetForTest(&github.PingEvent{})).Equal(nil)
	})

	t.Run("unsupported event returns nil", func(t *testing.T) {
		gt.V(t, server.GitHubEventToCheckTargetForTest(&github.StarEvent{})).Equal(nil)
	})
}

func TestRunCheck(t *testing.T) {
	target := &server.CheckTarget{Owner: "sebastianbergmann", Repo: "phpunit", Tag: "11.0.0"}

	t.Run("every matching repository is checked", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			FindRepositoriesFunc: func(ctx context.Context, owner, repo string) ([]*model.TrackedRepository, error) {
				return []*model.TrackedRepository{
					{Name: "homebrew/php/phpunit"},
					{Name: "homebrew/php/phpunit@10"},
				}, nil
			},
			CheckRepositoryFunc: func(ctx context.Context, name types.RepoName) (*model.CheckResult, error) {
				if name == "homebrew/php/phpunit" {
					return nil, errors.New("github is down")
				}
				return &model.CheckResult{Name: name, Decision: model.NoChange("not greater")}, nil
			},
		}

		server.RunCheckForTest(context.Background(), mockUC, target)

		finds := mockUC.FindRepositoriesCalls()
		gt.A(t, finds).Length(1)
		gt.V(t, finds[0].Owner).Equal("sebastianbergmann")
		gt.V(t, finds[0].Repo).Equal("phpunit")
		gt.V(t, len(mockUC.CheckRepositoryCalls())).Equal(2)
	})

	t.Run("no tracked repository checks nothing", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			FindRepositoriesFunc: func(ctx context.Context, owner, repo string) ([]*model.TrackedRepository, error) {
				return nil, nil
			},
		}

		server.RunCheckForTest(context.Background(), mockUC, target)
		gt.V(t, len(mockUC.CheckRepositoryCalls())).Equal(0)
	})
}
