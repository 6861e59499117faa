package resolver

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Resolver determines the latest version of a tracked repository and the
// archive of a version.
type Resolver interface {
	// Latest returns the raw name of the newest tag. found is false when the
	// repository has no tag yet.
	Latest(ctx context.Context) (tag string, found bool, err error)
	Normalize(raw string) string
	// Archive renders the archive URL of version and hashes its content.
	// version does not need to be the one returned by Latest.
	Archive(ctx context.Context, version string) (*model.Archive, error)
	Filename(version string) string
}

// New builds the resolver variant selected by repo.Strategy. All variants
// share TagHistory and differ in archive URL construction.
func New(repo *model.TrackedRepository, tags *TagHistory, fetcher interfaces.ArtifactFetcher) (Resolver, error) {
	loc, ok := locators[repo.Strategy]
	if !ok {
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown resolver strategy",
			goerr.V("name", repo.Name),
			goerr.V("strategy", repo.Strategy),
		)
	}

	return &resolver{
		repo:    repo,
		rule:    RuleFor(repo.Name, repo.VersionRule),
		tags:    tags,
		fetcher: fetcher,
		locator: loc,
	}, nil
}

type resolver struct {
	repo    *model.TrackedRepository
	rule    types.VersionRule
	tags    *TagHistory
	fetcher interfaces.ArtifactFetcher
	locator locator
}

func (x *resolver) Latest(ctx context.Context) (string, bool, error) {
	tag, err := x.tags.Latest(ctx, x.repo)
	if err != nil {
		return "", false, err
	}
	if tag == nil {
		return "", false, nil
	}

	logging.From(ctx).Debug("found latest tag",
		slog.Any("name", x.repo.Name),
		slog.String("tag", tag.Name),
		slog.Time("committed_at", tag.CommittedAt),
	)
	return tag.Name, true, nil
}

func (x *resolver) Normalize(raw string) string {
	return Normalize(x.rule, raw)
}

func (x *resolver) Filename(version string) string {
	return x.locator.filename(x.repo, version)
}

// URL renders the archive URL of version without fetching it.
func (x *resolver) URL(version string) string {
	tpl := x.locator.template()
	if x.repo.ArchiveTemplate != "" && !x.locator.fixed() {
		tpl = x.repo.ArchiveTemplate
	}

	return strings.NewReplacer(
		"{owner}", x.repo.Owner,
		"{name}", x.repo.Repo,
		"{version}", version,
		"{filename}", x.Filename(version),
	).Replace(tpl)
}

func (x *resolver) Archive(ctx context.Context, version string) (*model.Archive, error) {
	if version == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "version is empty", goerr.V("name", x.repo.Name))
	}

	url := x.URL(version)
	hash, err := x.fetcher.Hash(ctx, url)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch archive",
			goerr.V("name", x.repo.Name),
			goerr.V("version", version),
			goerr.V("url", url),
		)
	}

	return &model.Archive{URL: url, Hash: hash}, nil
}
