package fetcher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/brewup/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const DefaultTimeout = 60 * time.Second

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher downloads release archives and hashes them while streaming.
type Fetcher struct {
	client  HTTPClient
	timeout time.Duration
}

var _ interfaces.ArtifactFetcher = (*Fetcher)(nil)

type Option func(*Fetcher)

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Fetcher) {
		x.client = client
	}
}

// WithTimeout bounds a whole download including the body. Default is 60 seconds.
func WithTimeout(d time.Duration) Option {
	return func(x *Fetcher) {
		if d > 0 {
			x.timeout = d
		}
	}
}

func New(options ...Option) *Fetcher {
	x := &Fetcher{
		client:  http.DefaultClient,
		timeout: DefaultTimeout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// Hash returns "sha256:<hex>" of the body at url. Redirects are followed.
// Every failure is types.ErrArchiveUnavailable. Network failures and timeouts
// are also types.ErrTransientIO.
func (x *Fetcher) Hash(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", goerr.Wrap(types.ErrInvalidOption, "invalid archive url", goerr.V("url", url), goerr.V("error", err.Error()))
	}

	started := time.Now()
	resp, err := x.client.Do(req)
	if err != nil {
		return "", goerr.Wrap(errors.Join(types.ErrArchiveUnavailable, types.ErrTransientIO, err), "failed to request archive", goerr.V("url", url))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", goerr.Wrap(types.ErrArchiveUnavailable, "unexpected status code",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	h := sha256.New()
	n, err := io.Copy(h, resp.Body)
	if err != nil {
		return "", goerr.Wrap(errors.Join(types.ErrArchiveUnavailable, types.ErrTransientIO, err), "failed to read archive", goerr.V("url", url))
	}

	digest := "sha256:" + hex.EncodeToString(h.Sum(nil))
	logging.From(ctx).Debug("hashed archive",
		slog.String("url", url),
		slog.Int64("size", n),
		slog.Duration("elapsed", time.Since(started)),
		slog.String("hash", digest),
	)
	return digest, nil
}
