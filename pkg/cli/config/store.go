package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/brewup/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// Store keeps tracked repositories in either Firestore or PostgreSQL.
type Store struct {
	firestore Firestore
	postgres  Postgres
}

func (x *Store) Flags() []cli.Flag {
	return slice.Flatten(
		x.firestore.Flags(),
		x.postgres.Flags(),
	)
}

func (x *Store) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("firestore", &x.firestore),
		slog.Any("postgres", &x.postgres),
	)
}

// NewRepository opens the configured store. The returned function closes it.
func (x *Store) NewRepository(ctx context.Context) (interfaces.Repository, func(), error) {
	switch {
	case x.firestore.Enabled() && x.postgres.Enabled():
		return nil, nil, goerr.Wrap(types.ErrInvalidOption, "both Firestore and PostgreSQL are set, choose one")

	case x.firestore.Enabled():
		repo, err := x.firestore.NewRepository(ctx)
		if err != nil {
			return nil, nil, err
		}
		logging.From(ctx).Debug("use Firestore as repository store")
		return repo, func() { safe.Close(repo) }, nil

	case x.postgres.Enabled():
		repo, err := x.postgres.NewRepository(ctx)
		if err != nil {
			return nil, nil, err
		}
		logging.From(ctx).Debug("use PostgreSQL as repository store")
		return repo, func() { safe.Close(repo) }, nil

	default:
		return nil, nil, goerr.Wrap(types.ErrInvalidOption, "repository store is required, set Firestore project ID or PostgreSQL DSN")
	}
}
