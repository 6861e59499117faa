package postgres

import (
	"context"

	"github.com/lib/pq"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/repository"
	"github.com/m-mizutani/brewup/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

func (r *Repository) GetCommits(ctx context.Context, name types.RepoName, commitIDs []types.CommitID) (map[types.CommitID]*model.CommitRecord, error) {
	found := make(map[types.CommitID]*model.CommitRecord)
	if len(commitIDs) == 0 {
		return found, nil
	}

	ids := make([]string, len(commitIDs))
	for i, id := range commitIDs {
		ids[i] = string(id)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT repo_name, commit_id, committed_at FROM commit_date WHERE repo_name = $1 AND commit_id = ANY($2)`,
		name, pq.Array(ids),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get commits", goerr.V("name", name))
	}
	defer rows.Close()

	for rows.Next() {
		var rec model.CommitRecord
		if err := rows.Scan(&rec.RepoName, &rec.CommitID, &rec.CommittedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan commit", goerr.V("name", name))
		}
		found[rec.CommitID] = &rec
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate commits", goerr.V("name", name))
	}

	return found, nil
}

// PutCommits inserts records in one transaction. Existing rows win.
func (r *Repository) PutCommits(ctx context.Context, records []*model.CommitRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(tx)

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO commit_date (repo_name, commit_id, committed_at) VALUES ($1, $2, $3)
		ON CONFLICT (repo_name, commit_id) DO NOTHING`,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to prepare statement")
	}
	defer safe.Close(stmt)

	for _, rec := range records {
		if rec == nil || rec.RepoName == "" || rec.CommitID == "" {
			return goerr.Wrap(repository.ErrInvalidInput, "commit record lacks repo name or commit id")
		}
		if _, err := stmt.ExecContext(ctx, rec.RepoName, rec.CommitID, rec.CommittedAt.UTC()); err != nil {
			return goerr.Wrap(err, "failed to put commit",
				goerr.V("name", rec.RepoName),
				goerr.V("commitID", rec.CommitID),
			)
		}
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit transaction")
	}
	return nil
}
