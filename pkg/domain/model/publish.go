package model

import "github.com/m-mizutani/brewup/pkg/domain/types"

type PublishState string

const (
	StateIdle       PublishState = "idle"
	StateOnBase     PublishState = "on_base"
	StateBranched   PublishState = "branched"
	StatePatched    PublishState = "patched"
	StateCommitted  PublishState = "committed"
	StatePushed     PublishState = "pushed"
	StateDone       PublishState = "done"
	StateRolledBack PublishState = "rolled_back"
)

func (x PublishState) Terminal() bool {
	return x == StateDone || x == StateRolledBack
}

// PublishContext is passed from one publish step to the next. Each step
// returns an updated copy instead of mutating shared state.
type PublishContext struct {
	State   PublishState
	Repo    *TrackedRepository
	Release Release

	Branch               types.BranchName
	PatchedFiles         []string
	SkippedTargets       []string
	CommitID             types.CommitID
	ClosedPullRequestURL string
	PullRequestURL       string
}

func (x PublishContext) with(fn func(c *PublishContext)) PublishContext {
	c := x
	c.PatchedFiles = append([]string{}, x.PatchedFiles...)
	c.SkippedTargets = append([]string{}, x.SkippedTargets...)
	fn(&c)
	return c
}

// Next returns a copy of the context moved to state and modified by fn.
func (x PublishContext) Next(state PublishState, fn func(c *PublishContext)) PublishContext {
	return x.with(func(c *PublishContext) {
		c.State = state
		if fn != nil {
			fn(c)
		}
	})
}

type PullRequestState string

const (
	PullRequestOpen   PullRequestState = "open"
	PullRequestClosed PullRequestState = "closed"
)

type PullRequest struct {
	Number int
	URL    string
	State  PullRequestState
}

type NewPullRequest struct {
	Owner string
	Repo  string
	Title string
	Head  string
	Base  string
	Body  string
}
