package slack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/infra/slack"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestNotifyRelease(t *testing.T) {
	repo := &model.TrackedRepository{Name: "homebrew/php/composer"}
	release := &model.Release{
		RawTag:  "1.4.0",
		Version: "1.4.0",
		Archive: model.Archive{URL: "https://getcomposer.org/download/1.4.0/composer.phar", Hash: "sha256:aaaa"},
	}
	ctx := logging.CtxWithTime(context.Background(), func() time.Time {
		return time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC)
	})

	t.Run("posts release fields", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodPost)
			gt.V(t, r.Header.Get("Content-Type")).Equal("application/json")
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		t.Cleanup(srv.Close)

		n := gt.R1(slack.New(types.SlackWebhookURL(srv.URL))).NoError(t)
		gt.NoError(t, n.NotifyRelease(ctx, repo, release))

		gt.V(t, got["text"]).Equal("One of monitored formulas has been released!")
		raw := gt.R1(json.Marshal(got["attachments"])).NoError(t)
		gt.S(t, string(raw)).Contains("homebrew/php/composer")
		gt.S(t, string(raw)).Contains("2017-03-01T00:00:00Z")
		gt.S(t, string(raw)).Contains("sha256:aaaa")
	})

	t.Run("error status is returned", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("invalid_token"))
		}))
		t.Cleanup(srv.Close)

		n := gt.R1(slack.New(types.SlackWebhookURL(srv.URL))).NoError(t)
		gt.Error(t, n.NotifyRelease(ctx, repo, release))
	})

	t.Run("empty webhook url is rejected", func(t *testing.T) {
		_, err := slack.New("")
		gt.Error(t, err)
	})
}
