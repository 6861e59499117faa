package server

import (
	"context"

	"github.com/m-mizutani/brewup/pkg/utils/logging"
)

// DetachContext returns a context for work that outlives the webhook request,
// e.g. a check started after 202 is returned. It carries the request logger,
// request ID and clock of ctx but none of its cancellation.
func DetachContext(ctx context.Context) context.Context {
	detached := logging.With(context.Background(), logging.From(ctx))
	return logging.InheritContextValues(detached, ctx)
}
