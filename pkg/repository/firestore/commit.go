package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Commit records live under the tracked repository document:
// tracked_repository/{name}/commit/{commitID}. The parent document does not
// need to exist.

func (r *Repository) GetCommits(ctx context.Context, name types.RepoName, commitIDs []types.CommitID) (map[types.CommitID]*model.CommitRecord, error) {
	found := make(map[types.CommitID]*model.CommitRecord)
	if len(commitIDs) == 0 {
		return found, nil
	}

	parent, err := r.repoDoc(name)
	if err != nil {
		return nil, err
	}

	refs := make([]*firestore.DocumentRef, len(commitIDs))
	for i, id := range commitIDs {
		refs[i] = parent.Collection(collectionCommit).Doc(string(id))
	}

	snaps, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get commits",
			goerr.V("name", name),
			goerr.V("count", len(commitIDs)),
		)
	}

	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		var rec model.CommitRecord
		if err := snap.DataTo(&rec); err != nil {
			return nil, goerr.Wrap(err, "failed to decode commit",
				goerr.V("name", name),
				goerr.V("commitID", snap.Ref.ID),
			)
		}
		found[rec.CommitID] = &rec
	}

	return found, nil
}

func (r *Repository) PutCommits(ctx context.Context, records []*model.CommitRecord) error {
	for _, rec := range records {
		if rec == nil || rec.CommitID == "" {
			return goerr.Wrap(repository.ErrInvalidInput, "commit record lacks commit id")
		}
		parent, err := r.repoDoc(rec.RepoName)
		if err != nil {
			return err
		}

		docRef := parent.Collection(collectionCommit).Doc(string(rec.CommitID))
		if _, err := docRef.Create(ctx, rec); err != nil {
			if status.Code(err) == codes.AlreadyExists {
				continue
			}
			return goerr.Wrap(err, "failed to put commit",
				goerr.V("name", rec.RepoName),
				goerr.V("commitID", rec.CommitID),
			)
		}
	}

	return nil
}
