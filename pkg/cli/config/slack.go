package config

import (
	"log/slog"

	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/infra/slack"
	"github.com/urfave/cli/v3"
)

type Slack struct {
	webhookURL types.SlackWebhookURL `masq:"secret"`
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL to notify new releases",
			Category:    "Slack",
			Destination: (*string)(&x.webhookURL),
			Sources:     cli.EnvVars("BREWUP_SLACK_WEBHOOK_URL"),
		},
	}
}

// NewNotifier returns nil if the webhook URL is not set.
func (x *Slack) NewNotifier() (interfaces.Notifier, error) {
	if x.webhookURL == "" {
		return nil, nil
	}
	notifier, err := slack.New(x.webhookURL)
	if err != nil {
		return nil, err
	}
	return notifier, nil
}

func (x *Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("webhookURL", x.webhookURL),
	)
}
