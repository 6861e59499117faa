package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/utils/errutil"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// checkTarget is an upstream repository that has got a new tag.
type checkTarget struct {
	Owner string
	Repo  string
	Tag   string
}

func (x checkTarget) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("owner", x.Owner),
		slog.String("repo", x.Repo),
		slog.String("tag", x.Tag),
	)
}

// validateGitHubEvent verifies the signature of a webhook request and
// returns the repository to check, or nil if the event requires nothing.
func validateGitHubEvent(r *http.Request, key types.GitHubWebhookSecret) (*checkTarget, error) {
	ctx := r.Context()
	payload, err := github.ValidatePayload(r, []byte(key))
	if err != nil {
		return nil, goerr.Wrap(err, "validating payload")
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, goerr.Wrap(err, "parsing webhook")
	}

	logging.From(ctx).Info("Received GitHub event", slog.String("type", github.WebHookType(r)))

	return githubEventToCheckTarget(ctx, event), nil
}

func githubEventToCheckTarget(ctx context.Context, event any) *checkTarget {
	logger := logging.From(ctx)

	switch ev := event.(type) {
	case *github.ReleaseEvent:
		if ev.GetAction() != "published" {
			logger.Debug("ignore release event", slog.String("action", ev.GetAction()))
			return nil
		}
		return &checkTarget{
			Owner: ev.GetRepo().GetOwner().GetLogin(),
			Repo:  ev.GetRepo().GetName(),
			Tag:   ev.GetRelease().GetTagName(),
		}

	case *github.CreateEvent:
		if ev.GetRefType() != "tag" {
			logger.Debug("ignore create event", slog.String("ref_type", ev.GetRefType()))
			return nil
		}
		return &checkTarget{
			Owner: ev.GetRepo().GetOwner().GetLogin(),
			Repo:  ev.GetRepo().GetName(),
			Tag:   ev.GetRef(),
		}

	case *github.PingEvent, *github.InstallationEvent, *github.InstallationRepositoriesEvent:
		return nil // ignore

	default:
		logger.Warn("unsupported event", slog.Any("event", fmt.Sprintf("%T", event)))
		return nil
	}
}

// runCheck checks every tracked repository watching the target. It is
// designed to be called from a background goroutine.
func runCheck(ctx context.Context, uc interfaces.UseCase, target *checkTarget) {
	logger := logging.From(ctx).With(slog.Any("target", target))
	ctx = logging.With(ctx, logger)

	repos, err := uc.FindRepositories(ctx, target.Owner, target.Repo)
	if err != nil {
		errutil.HandleError(ctx, "failed to find tracked repositories", err)
		return
	}
	if len(repos) == 0 {
		logger.Info("no tracked repository for the event")
		return
	}

	for _, repo := range repos {
		result, err := uc.CheckRepository(ctx, repo.Name)
		if err != nil {
			errutil.HandleError(ctx, "background check failed", err)
			continue
		}
		logger.Info("check completed",
			slog.Any("name", result.Name),
			slog.Any("decision", result.Decision.Kind),
		)
	}
}
