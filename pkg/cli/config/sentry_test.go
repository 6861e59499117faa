package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/brewup/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestSentry(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		names := flagNames((&config.Sentry{}).Flags())
		gt.V(t, len(names)).Equal(3)
		gt.True(t, names["sentry-dsn"])
		gt.True(t, names["sentry-env"])
		gt.True(t, names["sentry-release"])
	})

	t.Run("not configured without DSN", func(t *testing.T) {
		var cfg config.Sentry
		gt.NoError(t, cfg.Configure(context.Background()))
	})
}
