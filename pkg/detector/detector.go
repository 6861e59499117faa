package detector

import (
	"context"
	"log/slog"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Decide returns NewVersion only when candidate is strictly greater than
// current under semantic versioning. Both are already normalized. An empty
// current means nothing has been published yet.
//
// A candidate that does not parse never promotes; it yields NoChange and a
// warning. So does a current version that does not parse, because the
// ordering against it is unknown.
func Decide(ctx context.Context, candidate, current string) model.Decision {
	logger := logging.From(ctx).With(
		slog.String("candidate", candidate),
		slog.String("current", current),
	)

	next, err := Parse(candidate)
	if err != nil {
		logger.Warn("candidate version is not comparable", slog.Any("error", err))
		return model.NoChange("unparsable candidate")
	}

	if current == "" {
		return model.NewVersion(candidate)
	}

	prev, err := Parse(current)
	if err != nil {
		logger.Warn("current version is not comparable", slog.Any("error", err))
		return model.NoChange("unparsable current")
	}

	if !next.GreaterThan(prev) {
		return model.NoChange("not greater")
	}

	return model.NewVersion(candidate)
}

// Parse accepts loose versions such as "1.2" or "v2.0.0-RC1" the same way as
// semver.NewVersion. The error wraps types.ErrUnparsableVersion.
func Parse(v string) (*semver.Version, error) {
	if v == "" {
		return nil, goerr.Wrap(types.ErrUnparsableVersion, "version is empty")
	}

	ver, err := semver.NewVersion(v)
	if err != nil {
		return nil, goerr.Wrap(types.ErrUnparsableVersion, err.Error(), goerr.V("version", v))
	}
	return ver, nil
}
