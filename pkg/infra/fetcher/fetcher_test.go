package fetcher_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/infra/fetcher"
	"github.com/m-mizutani/gt"
)

func TestHash(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/composer.phar", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})
	mux.HandleFunc("/redirect", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/composer.phar", http.StatusFound)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	ctx := context.Background()
	const hello = "sha256:2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

	t.Run("hashes body", func(t *testing.T) {
		h := gt.R1(fetcher.New().Hash(ctx, srv.URL+"/composer.phar")).NoError(t)
		gt.V(t, h).Equal(hello)
	})

	t.Run("follows redirect", func(t *testing.T) {
		h := gt.R1(fetcher.New().Hash(ctx, srv.URL+"/redirect")).NoError(t)
		gt.V(t, h).Equal(hello)
	})

	t.Run("not found is archive unavailable", func(t *testing.T) {
		_, err := fetcher.New().Hash(ctx, srv.URL+"/missing")
		gt.True(t, errors.Is(err, types.ErrArchiveUnavailable))
	})

	t.Run("timeout is transient", func(t *testing.T) {
		_, err := fetcher.New(fetcher.WithTimeout(50*time.Millisecond)).Hash(ctx, srv.URL+"/slow")
		gt.True(t, errors.Is(err, types.ErrTransientIO))
	})

	t.Run("connection refused is transient", func(t *testing.T) {
		_, err := fetcher.New().Hash(ctx, "http://127.0.0.1:1/composer.phar")
		gt.True(t, errors.Is(err, types.ErrTransientIO))
		gt.True(t, errors.Is(err, types.ErrArchiveUnavailable))
	})
}
