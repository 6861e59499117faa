package infra_test

import (
	"net/http"
	"testing"

	"github.com/m-mizutani/brewup/pkg/domain/mock"
	"github.com/m-mizutani/brewup/pkg/infra"
	"github.com/m-mizutani/brewup/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.HTTPClient()).Equal(http.DefaultClient)
		gt.V(t, clients.GitHub()).Equal(nil)
		gt.V(t, clients.VCS()).Equal(nil)
		gt.V(t, clients.Fetcher()).Equal(nil)
		gt.V(t, clients.Notifier()).Equal(nil)
		gt.V(t, clients.BigQuery()).Equal(nil)
		gt.V(t, clients.Repository()).Equal(nil)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})

	t.Run("WithHTTPClient option sets HTTP client", func(t *testing.T) {
		mockHTTP := &mockHTTPClient{}
		clients := infra.New(infra.WithHTTPClient(mockHTTP))
		gt.V(t, clients.HTTPClient()).Equal(mockHTTP)
	})

	t.Run("WithRepository option sets repository", func(t *testing.T) {
		repo := memory.New()
		clients := infra.New(infra.WithRepository(repo))
		gt.V(t, clients.Repository()).Equal(repo)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		mockBQ := &mock.BigQueryMock{}
		mockVCS := &mock.VCSMock{}
		mockFetcher := &mock.ArtifactFetcherMock{}
		mockNotifier := &mock.NotifierMock{}

		clients := infra.New(
			infra.WithGitHub(mockGH),
			infra.WithBigQuery(mockBQ),
			infra.WithVCS(mockVCS),
			infra.WithFetcher(mockFetcher),
			infra.WithNotifier(mockNotifier),
		)

		gt.V(t, clients.GitHub()).Equal(mockGH)
		gt.V(t, clients.BigQuery()).Equal(mockBQ)
		gt.V(t, clients.VCS()).Equal(mockVCS)
		gt.V(t, clients.Fetcher()).Equal(mockFetcher)
		gt.V(t, clients.Notifier()).Equal(mockNotifier)
	})
}

type mockHTTPClient struct{}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, nil
}
