package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/brewup/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const releaseText = "One of monitored formulas has been released!"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Notifier posts release notifications to a Slack incoming webhook.
type Notifier struct {
	webhookURL types.SlackWebhookURL
	client     HTTPClient
}

var _ interfaces.Notifier = (*Notifier)(nil)

type Option func(*Notifier)

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Notifier) {
		x.client = client
	}
}

func New(webhookURL types.SlackWebhookURL, options ...Option) (*Notifier, error) {
	if webhookURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "slack webhook url is empty")
	}

	x := &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range options {
		opt(x)
	}
	return x, nil
}

type field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

type attachment struct {
	Color  string  `json:"color"`
	Title  string  `json:"title"`
	Fields []field `json:"fields"`
}

type message struct {
	Text        string       `json:"text"`
	Attachments []attachment `json:"attachments"`
}

func newMessage(ctx context.Context, repo *model.TrackedRepository, release *model.Release) *message {
	return &message{
		Text: releaseText,
		Attachments: []attachment{
			{
				Color: "good",
				Title: string(repo.Name),
				Fields: []field{
					{Title: "Version", Value: release.Version, Short: true},
					{Title: "Checked at", Value: logging.CtxTime(ctx).UTC().Format(time.RFC3339), Short: true},
					{Title: "Archive url", Value: release.Archive.URL},
					{Title: "Hash", Value: release.Archive.Hash},
				},
			},
		},
	}
}

func (x *Notifier) NotifyRelease(ctx context.Context, repo *model.TrackedRepository, release *model.Release) error {
	body, err := json.Marshal(newMessage(ctx, repo, release))
	if err != nil {
		return goerr.Wrap(err, "failed to marshal slack message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, string(x.webhookURL), bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to create slack request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.client.Do(req)
	if err != nil {
		return goerr.Wrap(errors.Join(types.ErrTransientIO, err), "failed to post to slack webhook",
			goerr.V("name", repo.Name),
		)
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return goerr.New("slack webhook returned error",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
		)
	}

	return nil
}
