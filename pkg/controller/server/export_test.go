package server

import (
	"context"

	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
)

type CheckTarget = checkTarget

func GitHubEventToCheckTargetForTest(event any) *CheckTarget {
	return githubEventToCheckTarget(context.Background(), event)
}

func RunCheckForTest(ctx context.Context, uc interfaces.UseCase, target *CheckTarget) {
	runCheck(ctx, uc, target)
}
