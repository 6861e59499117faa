package resolver_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/brewup/pkg/domain/mock"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/repository/memory"
	"github.com/m-mizutani/brewup/pkg/resolver"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

const testHash = "sha256:9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

func newResolver(t *testing.T, repo *model.TrackedRepository, fetcher *mock.ArtifactFetcherMock) resolver.Resolver {
	gh := githubWithTags(
		[]*model.Tag{{Name: "v1.0.0", CommitID: "c1"}, {Name: "v1.1.0", CommitID: "c2"}},
		map[types.CommitID]time.Time{"c1": baseTime, "c2": baseTime.Add(time.Hour)},
	)
	return gt.R1(resolver.New(repo, resolver.NewTagHistory(gh, memory.New()), fetcher)).NoError(t)
}

func TestResolverURL(t *testing.T) {
	testCases := []struct {
		name     string
		repoName types.RepoName
		strategy types.ResolverStrategy
		template string
		version  string
		expect   string
	}{
		{
			name:     "tag tarball",
			repoName: "homebrew/php/example",
			strategy: types.StrategyTagTarball,
			version:  "1.1.0",
			expect:   "https://github.com/acme/example/archive/1.1.0.tar.gz",
		},
		{
			name:     "tag tarball with v prefix",
			repoName: "homebrew/php/example",
			strategy: types.StrategyTagTarballPrefixV,
			version:  "1.1.0",
			expect:   "https://github.com/acme/example/archive/v1.1.0.tar.gz",
		},
		{
			name:     "release asset uses short name",
			repoName: "homebrew/php/php-cs-fixer",
			strategy: types.StrategyReleaseAsset,
			version:  "2.3.1",
			expect:   "https://github.com/acme/example/releases/download/2.3.1/php-cs-fixer.phar",
		},
		{
			name:     "release asset with v prefix",
			repoName: "homebrew/php/php-cs-fixer",
			strategy: types.StrategyReleaseAssetPrefixV,
			version:  "2.3.1",
			expect:   "https://github.com/acme/example/releases/download/v2.3.1/php-cs-fixer.phar",
		},
		{
			name:     "release asset with versioned filename",
			repoName: "homebrew/php/box",
			strategy: types.StrategyReleaseAssetVersion,
			version:  "2.7.5",
			expect:   "https://github.com/acme/example/releases/download/2.7.5/box-2.7.5.phar",
		},
		{
			name:     "composer host",
			repoName: "homebrew/php/composer",
			strategy: types.StrategyComposer,
			version:  "1.5.2",
			expect:   "https://getcomposer.org/download/1.5.2/composer.phar",
		},
		{
			name:     "phpunit host",
			repoName: "homebrew/php/phpunit",
			strategy: types.StrategyPHPUnit,
			version:  "6.4.3",
			expect:   "https://phar.phpunit.de/phpunit-6.4.3.phar",
		},
		{
			name:     "phpmyadmin host",
			repoName: "homebrew/php/phpmyadmin",
			strategy: types.StrategyPHPMyAdmin,
			version:  "4.7.0",
			expect:   "https://files.phpmyadmin.net/phpMyAdmin/4.7.0/phpMyAdmin-4.7.0-all-languages.tar.gz",
		},
		{
			name:     "record template overrides default",
			repoName: "homebrew/php/example",
			strategy: types.StrategyTagTarball,
			template: "https://example.com/{owner}/{name}-{version}.zip",
			version:  "1.1.0",
			expect:   "https://example.com/acme/example-1.1.0.zip",
		},
		{
			name:     "fixed host ignores record template",
			repoName: "homebrew/php/composer",
			strategy: types.StrategyComposer,
			template: "https://example.com/{version}",
			version:  "1.5.2",
			expect:   "https://getcomposer.org/download/1.5.2/composer.phar",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := testRepo()
			repo.Name = tc.repoName
			repo.Strategy = tc.strategy
			repo.ArchiveTemplate = tc.template

			r := newResolver(t, repo, &mock.ArtifactFetcherMock{})
			gt.V(t, resolver.URLForTest(r, tc.version)).Equal(tc.expect)
		})
	}
}

func TestResolverFilename(t *testing.T) {
	repo := testRepo()
	repo.Name = "homebrew/php/box"

	repo.Strategy = types.StrategyReleaseAsset
	gt.V(t, newResolver(t, repo, nil).Filename("2.7.5")).Equal("box")

	repo.Strategy = types.StrategyReleaseAssetVersion
	gt.V(t, newResolver(t, repo, nil).Filename("2.7.5")).Equal("box-2.7.5")
}

func TestResolverLatest(t *testing.T) {
	ctx := context.Background()
	r := newResolver(t, testRepo(), nil)

	tag, found, err := r.Latest(ctx)
	gt.NoError(t, err)
	gt.True(t, found)
	gt.V(t, tag).Equal("v1.1.0")
	gt.V(t, r.Normalize(tag)).Equal("1.1.0")
}

func TestResolverArchive(t *testing.T) {
	ctx := context.Background()

	t.Run("returns rendered url and hash", func(t *testing.T) {
		fetcher := &mock.ArtifactFetcherMock{
			HashFunc: func(ctx context.Context, url string) (string, error) {
				return testHash, nil
			},
		}
		r := newResolver(t, testRepo(), fetcher)

		archive := gt.R1(r.Archive(ctx, "1.0.0")).NoError(t)
		gt.V(t, archive.URL).Equal("https://github.com/acme/example/archive/1.0.0.tar.gz")
		gt.V(t, archive.Hash).Equal(testHash)
		gt.V(t, fetcher.HashCalls()[0].Url).Equal(archive.URL)
	})

	t.Run("unavailable archive is reported", func(t *testing.T) {
		fetcher := &mock.ArtifactFetcherMock{
			HashFunc: func(ctx context.Context, url string) (string, error) {
				return "", goerr.Wrap(types.ErrArchiveUnavailable, "not found", goerr.V("status", 404))
			},
		}
		r := newResolver(t, testRepo(), fetcher)

		_, err := r.Archive(ctx, "9.9.9")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrArchiveUnavailable))
	})

	t.Run("empty version is rejected", func(t *testing.T) {
		r := newResolver(t, testRepo(), &mock.ArtifactFetcherMock{})
		_, err := r.Archive(ctx, "")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestNewUnknownStrategy(t *testing.T) {
	repo := testRepo()
	repo.Strategy = "svn"
	_, err := resolver.New(repo, nil, nil)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}
