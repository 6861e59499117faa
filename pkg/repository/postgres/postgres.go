package postgres

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Repository struct {
	db *sql.DB
}

var _ interfaces.Repository = (*Repository)(nil)

// New opens a PostgreSQL connection and applies pending migrations.
func New(ctx context.Context, dsn types.DatabaseDSN) (*Repository, error) {
	db, err := sql.Open("postgres", string(dsn))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database")
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to ping database")
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repository{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return goerr.Wrap(err, "failed to open migrations")
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, sub)
	if err != nil {
		return goerr.Wrap(err, "failed to create migration provider")
	}
	if _, err := provider.Up(ctx); err != nil {
		return goerr.Wrap(err, "failed to run migrations")
	}
	return nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}
