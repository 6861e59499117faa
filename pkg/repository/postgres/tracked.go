package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

const trackedColumns = `name, owner, repo, strategy, archive_template, version_rule,
	current_version, archive_url, archive_hash,
	checkout_path, upstream_owner, upstream_repo, upstream_base, fork_owner, pull_request_url,
	revision_targets, dependent_targets, enabled, checked_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTracked(row rowScanner) (*model.TrackedRepository, error) {
	var (
		repo      model.TrackedRepository
		revision  pq.StringArray
		dependent pq.StringArray
		checkedAt sql.NullTime
	)

	err := row.Scan(
		&repo.Name, &repo.Owner, &repo.Repo, &repo.Strategy, &repo.ArchiveTemplate, &repo.VersionRule,
		&repo.CurrentVersion, &repo.ArchiveURL, &repo.ArchiveHash,
		&repo.CheckoutPath, &repo.Upstream.Owner, &repo.Upstream.Repo, &repo.Upstream.BaseBranch, &repo.ForkOwner, &repo.PullRequestURL,
		&revision, &dependent, &repo.Enabled, &checkedAt, &repo.CreatedAt, &repo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(revision) > 0 {
		repo.RevisionTargets = revision
	}
	if len(dependent) > 0 {
		repo.DependentTargets = dependent
	}
	if checkedAt.Valid {
		repo.CheckedAt = checkedAt.Time
	}
	return &repo, nil
}

func nullTime(ts sql.NullTime) any {
	if !ts.Valid {
		return nil
	}
	return ts.Time
}

func (r *Repository) PutRepository(ctx context.Context, repo *model.TrackedRepository) error {
	if repo == nil || repo.Name == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "repository name is empty")
	}

	checkedAt := sql.NullTime{Time: repo.CheckedAt, Valid: !repo.CheckedAt.IsZero()}

	query := `INSERT INTO tracked_repository (` + trackedColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (name) DO UPDATE SET
			owner = EXCLUDED.owner,
			repo = EXCLUDED.repo,
			strategy = EXCLUDED.strategy,
			archive_template = EXCLUDED.archive_template,
			version_rule = EXCLUDED.version_rule,
			current_version = EXCLUDED.current_version,
			archive_url = EXCLUDED.archive_url,
			archive_hash = EXCLUDED.archive_hash,
			checkout_path = EXCLUDED.checkout_path,
			upstream_owner = EXCLUDED.upstream_owner,
			upstream_repo = EXCLUDED.upstream_repo,
			upstream_base = EXCLUDED.upstream_base,
			fork_owner = EXCLUDED.fork_owner,
			pull_request_url = EXCLUDED.pull_request_url,
			revision_targets = EXCLUDED.revision_targets,
			dependent_targets = EXCLUDED.dependent_targets,
			enabled = EXCLUDED.enabled,
			checked_at = EXCLUDED.checked_at,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		repo.Name, repo.Owner, repo.Repo, repo.Strategy, repo.ArchiveTemplate, repo.VersionRule,
		repo.CurrentVersion, repo.ArchiveURL, repo.ArchiveHash,
		repo.CheckoutPath, repo.Upstream.Owner, repo.Upstream.Repo, repo.Upstream.BaseBranch, repo.ForkOwner, repo.PullRequestURL,
		pq.Array(nonNil(repo.RevisionTargets)), pq.Array(nonNil(repo.DependentTargets)), repo.Enabled,
		nullTime(checkedAt), repo.CreatedAt, repo.UpdatedAt,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to put repository", goerr.V("name", repo.Name))
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (r *Repository) GetRepository(ctx context.Context, name types.RepoName) (*model.TrackedRepository, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+trackedColumns+` FROM tracked_repository WHERE name = $1`, name)

	repo, err := scanTracked(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("name", name))
		}
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("name", name))
	}
	return repo, nil
}

func (r *Repository) ListRepositories(ctx context.Context) ([]*model.TrackedRepository, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+trackedColumns+` FROM tracked_repository ORDER BY name`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories")
	}
	defer rows.Close()

	var repos []*model.TrackedRepository
	for rows.Next() {
		repo, err := scanTracked(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan repository")
		}
		repos = append(repos, repo)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate repositories")
	}

	return repos, nil
}

func (r *Repository) DeleteRepository(ctx context.Context, name types.RepoName) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tracked_repository WHERE name = $1`, name)
	if err != nil {
		return goerr.Wrap(err, "failed to delete repository", goerr.V("name", name))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows", goerr.V("name", name))
	}
	if n == 0 {
		return goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("name", name))
	}
	return nil
}
