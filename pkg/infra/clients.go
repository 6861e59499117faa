package infra

import (
	"net/http"

	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
)

// Clients bundles the external dependencies used by use cases. Unset clients
// are nil and the features depending on them are disabled.
type Clients struct {
	github     interfaces.GitHub
	vcs        interfaces.VCS
	fetcher    interfaces.ArtifactFetcher
	notifier   interfaces.Notifier
	httpClient HTTPClient
	bqClient   interfaces.BigQuery
	repository interfaces.Repository
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) VCS() interfaces.VCS {
	return x.vcs
}
func (x *Clients) Fetcher() interfaces.ArtifactFetcher {
	return x.fetcher
}
func (x *Clients) Notifier() interfaces.Notifier {
	return x.notifier
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) Repository() interfaces.Repository {
	return x.repository
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithVCS(client interfaces.VCS) Option {
	return func(x *Clients) {
		x.vcs = client
	}
}

func WithFetcher(client interfaces.ArtifactFetcher) Option {
	return func(x *Clients) {
		x.fetcher = client
	}
}

func WithNotifier(client interfaces.Notifier) Option {
	return func(x *Clients) {
		x.notifier = client
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithRepository(repo interfaces.Repository) Option {
	return func(x *Clients) {
		x.repository = repo
	}
}
