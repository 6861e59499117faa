package firestore

import (
	"context"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ToFirestoreID converts a repository name to a Firestore-safe document ID.
// Names are "/" separated paths such as "homebrew/php/composer", so "/" is
// replaced with ":" which never appears in a name.
func ToFirestoreID(name types.RepoName) (string, error) {
	if name == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "name is empty")
	}
	if strings.Contains(string(name), ":") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "name contains invalid character ':'",
			goerr.V("name", name),
		)
	}
	if strings.HasPrefix(string(name), "/") || strings.HasSuffix(string(name), "/") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "name starts or ends with '/'",
			goerr.V("name", name),
		)
	}

	return strings.ReplaceAll(string(name), "/", ":"), nil
}

func (r *Repository) repoDoc(name types.RepoName) (*firestore.DocumentRef, error) {
	id, err := ToFirestoreID(name)
	if err != nil {
		return nil, err
	}
	return r.client.Collection(collectionRepo).Doc(id), nil
}

func (r *Repository) PutRepository(ctx context.Context, repo *model.TrackedRepository) error {
	docRef, err := r.repoDoc(repo.Name)
	if err != nil {
		return err
	}

	if _, err := docRef.Set(ctx, repo); err != nil {
		return goerr.Wrap(err, "failed to put repository",
			goerr.V("name", repo.Name),
		)
	}

	return nil
}

func (r *Repository) GetRepository(ctx context.Context, name types.RepoName) (*model.TrackedRepository, error) {
	docRef, err := r.repoDoc(name)
	if err != nil {
		return nil, err
	}

	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
				goerr.V("name", name),
			)
		}
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("name", name),
		)
	}

	var repo model.TrackedRepository
	if err := snap.DataTo(&repo); err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository",
			goerr.V("name", name),
		)
	}

	return &repo, nil
}

func (r *Repository) ListRepositories(ctx context.Context) ([]*model.TrackedRepository, error) {
	iter := r.client.Collection(collectionRepo).Documents(ctx)
	defer iter.Stop()

	var repos []*model.TrackedRepository
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate repositories")
		}

		var repo model.TrackedRepository
		if err := snap.DataTo(&repo); err != nil {
			return nil, goerr.Wrap(err, "failed to decode repository",
				goerr.V("docID", snap.Ref.ID),
			)
		}

		repos = append(repos, &repo)
	}

	sort.Slice(repos, func(i, j int) bool {
		return repos[i].Name < repos[j].Name
	})
	return repos, nil
}

func (r *Repository) DeleteRepository(ctx context.Context, name types.RepoName) error {
	docRef, err := r.repoDoc(name)
	if err != nil {
		return err
	}

	if _, err := docRef.Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(repository.ErrNotFound, "repository not found",
				goerr.V("name", name),
			)
		}
		return goerr.Wrap(err, "failed to delete repository",
			goerr.V("name", name),
		)
	}

	return nil
}
