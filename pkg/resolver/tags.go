package resolver

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/metrics"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of commit date requests in flight at once.
const DefaultChunkSize = 15

// DatedTag is a tag with the authored time of the commit it points to.
type DatedTag struct {
	model.Tag
	CommittedAt time.Time
}

// TagHistory orders upstream tags by commit date. Commit dates are read from
// the cache first; missing ones are fetched from GitHub in bounded chunks and
// written back before use.
type TagHistory struct {
	github    interfaces.GitHub
	cache     interfaces.CommitCache
	chunkSize int
}

type TagHistoryOption func(*TagHistory)

func WithChunkSize(n int) TagHistoryOption {
	return func(x *TagHistory) {
		if n > 0 {
			x.chunkSize = n
		}
	}
}

func NewTagHistory(gh interfaces.GitHub, cache interfaces.CommitCache, options ...TagHistoryOption) *TagHistory {
	x := &TagHistory{
		github:    gh,
		cache:     cache,
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// Latest returns the newest tag by commit date, or nil if the repository has no tag.
func (x *TagHistory) Latest(ctx context.Context, repo *model.TrackedRepository) (*DatedTag, error) {
	tags, err := x.Sorted(ctx, repo)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return tags[0], nil
}

// Sorted returns tags ordered by commit date, newest first. Tags sharing a
// date keep the order of the API response.
func (x *TagHistory) Sorted(ctx context.Context, repo *model.TrackedRepository) ([]*DatedTag, error) {
	tags, err := x.github.ListTags(ctx, repo.Owner, repo.Repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tags", goerr.V("repo", repo.FullName()))
	}
	if len(tags) == 0 {
		return nil, nil
	}

	dates, err := x.commitDates(ctx, repo, tags)
	if err != nil {
		return nil, err
	}

	dated := make([]*DatedTag, len(tags))
	for i, tag := range tags {
		dated[i] = &DatedTag{Tag: *tag, CommittedAt: dates[tag.CommitID]}
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].CommittedAt.After(dated[j].CommittedAt)
	})

	return dated, nil
}

func (x *TagHistory) commitDates(ctx context.Context, repo *model.TrackedRepository, tags []*model.Tag) (map[types.CommitID]time.Time, error) {
	var ids []types.CommitID
	seen := map[types.CommitID]struct{}{}
	for _, tag := range tags {
		if _, ok := seen[tag.CommitID]; ok {
			continue
		}
		seen[tag.CommitID] = struct{}{}
		ids = append(ids, tag.CommitID)
	}

	cached, err := x.cache.GetCommits(ctx, repo.Name, ids)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get cached commits", goerr.V("name", repo.Name))
	}

	dates := make(map[types.CommitID]time.Time, len(ids))
	var missing []types.CommitID
	for _, id := range ids {
		if rec, ok := cached[id]; ok {
			dates[id] = rec.CommittedAt
			continue
		}
		missing = append(missing, id)
	}
	metrics.CommitDateLookups.WithLabelValues("cache").Add(float64(len(ids) - len(missing)))

	logging.From(ctx).Debug("resolved cached commit dates",
		slog.Any("name", repo.Name),
		slog.Int("tags", len(tags)),
		slog.Int("cached", len(ids)-len(missing)),
		slog.Int("missing", len(missing)),
	)

	for start := 0; start < len(missing); start += x.chunkSize {
		end := min(start+x.chunkSize, len(missing))
		records, err := x.fetchChunk(ctx, repo, missing[start:end])
		if err != nil {
			return nil, err
		}

		if err := x.cache.PutCommits(ctx, records); err != nil {
			return nil, goerr.Wrap(err, "failed to put commits", goerr.V("name", repo.Name))
		}
		for _, rec := range records {
			dates[rec.CommitID] = rec.CommittedAt
		}
	}

	return dates, nil
}

// fetchChunk fetches commit dates of ids concurrently and returns when all of them are done.
func (x *TagHistory) fetchChunk(ctx context.Context, repo *model.TrackedRepository, ids []types.CommitID) ([]*model.CommitRecord, error) {
	records := make([]*model.CommitRecord, len(ids))

	eg, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		eg.Go(func() error {
			ts, err := x.github.GetCommitDate(ctx, repo.Owner, repo.Repo, id)
			if err != nil {
				return goerr.Wrap(err, "failed to get commit date",
					goerr.V("repo", repo.FullName()),
					goerr.V("commit", id),
				)
			}

			records[i] = &model.CommitRecord{
				RepoName:    repo.Name,
				CommitID:    id,
				CommittedAt: ts,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	metrics.CommitDateLookups.WithLabelValues("api").Add(float64(len(ids)))
	return records, nil
}
