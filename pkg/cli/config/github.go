package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/infra/gh"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHub selects the credential of the GitHub API. A token wins over a GitHub
// App, and without both the API is called anonymously.
type GitHub struct {
	token         types.GitHubToken         `masq:"secret"`
	appID         types.GitHubAppID
	installID     types.GitHubAppInstallID
	installOwner  string
	privateKey    types.GitHubAppPrivateKey `masq:"secret"`
	webhookSecret types.GitHubWebhookSecret `masq:"secret"`
	timeout       time.Duration
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("BREWUP_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("BREWUP_GITHUB_APP_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("BREWUP_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("BREWUP_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-installation-owner",
			Usage:       "Owner to look up the GitHub App installation ID of, used when the ID is not set",
			Category:    "GitHub",
			Destination: &x.installOwner,
			Sources:     cli.EnvVars("BREWUP_GITHUB_APP_INSTALLATION_OWNER"),
		},
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "GitHub webhook secret",
			Category:    "GitHub",
			Destination: (*string)(&x.webhookSecret),
			Sources:     cli.EnvVars("BREWUP_GITHUB_WEBHOOK_SECRET"),
		},
		&cli.DurationFlag{
			Name:        "github-api-timeout",
			Usage:       "Timeout of each GitHub API call",
			Category:    "GitHub",
			Destination: &x.timeout,
			Value:       gh.DefaultTimeout,
			Sources:     cli.EnvVars("BREWUP_GITHUB_API_TIMEOUT"),
		},
	}
}

func (x *GitHub) NewClient(ctx context.Context) (*gh.Client, error) {
	options := []gh.Option{gh.WithTimeout(x.timeout)}

	switch {
	case x.token != "":
		return gh.NewWithToken(x.token, options...)

	case x.appID != 0:
		if x.privateKey == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App private key is required")
		}

		installID := x.installID
		if installID == 0 {
			if x.installOwner == "" {
				return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App installation ID or owner is required")
			}
			id, err := gh.FindInstallationID(ctx, x.appID, x.privateKey, x.installOwner, options...)
			if err != nil {
				return nil, err
			}
			installID = id
		}
		return gh.NewWithApp(x.appID, installID, x.privateKey, options...)

	default:
		logging.From(ctx).Warn("GitHub credential is not configured, API rate limit is strict")
		return gh.New(options...)
	}
}

// Token is used by the go-git backend to push over HTTPS.
func (x *GitHub) Token() types.GitHubToken {
	return x.token
}

func (x *GitHub) WebhookSecret() types.GitHubWebhookSecret {
	return x.webhookSecret
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.String("installOwner", x.installOwner),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.Int("webhookSecret.len", len(x.webhookSecret)),
		slog.Duration("timeout", x.timeout),
	)
}
