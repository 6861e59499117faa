package gh

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/infra/httpratelimit"
	"github.com/m-mizutani/brewup/pkg/metrics"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

const DefaultTimeout = 30 * time.Second

type Client struct {
	client  *github.Client
	timeout time.Duration
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	timeout   time.Duration
	baseURL   string
	transport http.RoundTripper
}

type Option func(*config)

// WithTimeout sets the timeout of each API call. Default is 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(x *config) {
		if d > 0 {
			x.timeout = d
		}
	}
}

// WithBaseURL points the client to another API endpoint such as GitHub Enterprise.
func WithBaseURL(u string) Option {
	return func(x *config) {
		x.baseURL = u
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *config) {
		x.transport = tr
	}
}

func newConfig(options []Option) *config {
	cfg := &config{
		timeout:   DefaultTimeout,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(cfg)
	}
	return cfg
}

// baseTransport is shared by all auth methods: requests are counted, then
// throttled when the rate limit is exceeded.
func (x *config) baseTransport() http.RoundTripper {
	return httpratelimit.NewTransport(metrics.WrapTransport(x.transport))
}

func (x *config) build(httpClient *http.Client) (*Client, error) {
	client := github.NewClient(httpClient)
	if x.baseURL != "" {
		u, err := url.Parse(x.baseURL)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL", goerr.V("url", x.baseURL))
		}
		if u.Path == "" || u.Path[len(u.Path)-1] != '/' {
			u.Path += "/"
		}
		client.BaseURL = u
	}

	return &Client{client: client, timeout: x.timeout}, nil
}

// New creates a client without authentication. Anonymous access is enough
// for public tags and commits, but not for pull requests.
func New(options ...Option) (*Client, error) {
	cfg := newConfig(options)
	return cfg.build(&http.Client{Transport: cfg.baseTransport()})
}

// NewWithToken creates a client authenticated by a personal access token.
func NewWithToken(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}

	cfg := newConfig(options)
	tr := &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)}),
		Base:   cfg.baseTransport(),
	}
	return cfg.build(&http.Client{Transport: tr})
}

// NewWithApp creates a client authenticated as an installation of a GitHub App.
func NewWithApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	cfg := newConfig(options)
	itr, err := ghinstallation.New(cfg.baseTransport(), int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport", goerr.V("appID", appID))
	}
	if cfg.baseURL != "" {
		itr.BaseURL = cfg.baseURL
	}

	return cfg.build(&http.Client{Transport: itr})
}

// call bounds ctx by the per call timeout.
func (x *Client) call(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, x.timeout)
}

// wrapErr marks timeouts and network failures as types.ErrTransientIO.
func wrapErr(err error, msg string, values ...goerr.Option) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		err = errors.Join(types.ErrTransientIO, err)
	}
	return goerr.Wrap(err, msg, values...)
}

// ListTags returns all tags of owner/repo in API order.
func (x *Client) ListTags(ctx context.Context, owner, repo string) ([]*model.Tag, error) {
	opt := &github.ListOptions{PerPage: 100}

	var tags []*model.Tag
	for {
		callCtx, cancel := x.call(ctx)
		resp, r, err := x.client.Repositories.ListTags(callCtx, owner, repo, opt)
		cancel()
		if err != nil {
			return nil, wrapErr(err, "failed to list tags",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
				goerr.V("page", opt.Page),
			)
		}

		for _, tag := range resp {
			tags = append(tags, &model.Tag{
				Name:     tag.GetName(),
				CommitID: types.CommitID(tag.GetCommit().GetSHA()),
			})
		}

		if r.NextPage == 0 {
			break
		}
		opt.Page = r.NextPage
	}

	logging.From(ctx).Debug("listed tags",
		slog.String("owner", owner),
		slog.String("repo", repo),
		slog.Int("count", len(tags)),
	)
	return tags, nil
}

// GetCommitDate returns the authored time of a commit.
func (x *Client) GetCommitDate(ctx context.Context, owner, repo string, commitID types.CommitID) (time.Time, error) {
	ctx, cancel := x.call(ctx)
	defer cancel()

	commit, _, err := x.client.Git.GetCommit(ctx, owner, repo, string(commitID))
	if err != nil {
		return time.Time{}, wrapErr(err, "failed to get commit",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("commitID", commitID),
		)
	}

	date := commit.GetAuthor().GetDate()
	if date.IsZero() {
		return time.Time{}, goerr.Wrap(types.ErrInvalidGitHubData, "commit has no author date",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("commitID", commitID),
		)
	}

	return date.UTC(), nil
}

func toPullRequest(pr *github.PullRequest) *model.PullRequest {
	return &model.PullRequest{
		Number: pr.GetNumber(),
		URL:    pr.GetHTMLURL(),
		State:  model.PullRequestState(pr.GetState()),
	}
}

func (x *Client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*model.PullRequest, error) {
	ctx, cancel := x.call(ctx)
	defer cancel()

	pr, _, err := x.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, wrapErr(err, "failed to get pull request",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("number", number),
		)
	}

	return toPullRequest(pr), nil
}

func (x *Client) ClosePullRequest(ctx context.Context, owner, repo string, number int) error {
	ctx, cancel := x.call(ctx)
	defer cancel()

	_, _, err := x.client.PullRequests.Edit(ctx, owner, repo, number, &github.PullRequest{
		State: github.Ptr(string(model.PullRequestClosed)),
	})
	if err != nil {
		return wrapErr(err, "failed to close pull request",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("number", number),
		)
	}

	return nil
}

func (x *Client) CreatePullRequest(ctx context.Context, input *model.NewPullRequest) (*model.PullRequest, error) {
	ctx, cancel := x.call(ctx)
	defer cancel()

	pr, _, err := x.client.PullRequests.Create(ctx, input.Owner, input.Repo, &github.NewPullRequest{
		Title: github.Ptr(input.Title),
		Head:  github.Ptr(input.Head),
		Base:  github.Ptr(input.Base),
		Body:  github.Ptr(input.Body),
	})
	if err != nil {
		return nil, wrapErr(err, "failed to create pull request",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("head", input.Head),
			goerr.V("base", input.Base),
		)
	}

	logging.From(ctx).Info("created pull request",
		slog.String("url", pr.GetHTMLURL()),
		slog.Int("number", pr.GetNumber()),
	)
	return toPullRequest(pr), nil
}
