package errutil

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// IsTransient reports whether err is a network or rate limit failure that is
// expected to pass on a later check.
func IsTransient(err error) bool {
	return errors.Is(err, types.ErrTransientIO)
}

// HandleError logs err and sends it to Sentry. It is for failures that do not
// stop the caller, e.g. one repository failing in a batch check.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}
	transient := IsTransient(err)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("transient", strconv.FormatBool(transient))
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"transient", transient,
		"sentry.EventID", evID,
	)
}
