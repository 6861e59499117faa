package resolver

import (
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
)

const (
	githubArchive = "https://github.com/{owner}/{name}/archive/"
	githubRelease = "https://github.com/{owner}/{name}/releases/download/"
)

// locator is the part that differs between resolver variants.
type locator interface {
	template() string
	filename(repo *model.TrackedRepository, version string) string
	// fixed reports whether the template ignores TrackedRepository.ArchiveTemplate.
	fixed() bool
}

var locators = map[types.ResolverStrategy]locator{
	types.StrategyTagTarball:          &tagTarball{},
	types.StrategyTagTarballPrefixV:   &tagTarball{prefix: "v"},
	types.StrategyReleaseAsset:        &releaseAsset{},
	types.StrategyReleaseAssetPrefixV: &releaseAsset{prefix: "v"},
	types.StrategyReleaseAssetVersion: &releaseAsset{versioned: true},
	types.StrategyComposer:            &fixedHost{format: "https://getcomposer.org/download/{version}/composer.phar"},
	types.StrategyPHPUnit:             &fixedHost{format: "https://phar.phpunit.de/phpunit-{version}.phar"},
	types.StrategyPHPMyAdmin:          &fixedHost{format: "https://files.phpmyadmin.net/phpMyAdmin/{version}/phpMyAdmin-{version}-all-languages.tar.gz"},
}

// tagTarball is the source tarball GitHub generates for a tag.
type tagTarball struct {
	prefix string
}

func (x *tagTarball) template() string {
	return githubArchive + x.prefix + "{version}.tar.gz"
}

func (x *tagTarball) filename(repo *model.TrackedRepository, _ string) string {
	return repo.ShortName()
}

func (x *tagTarball) fixed() bool { return false }

// releaseAsset is a phar binary attached to a GitHub release.
type releaseAsset struct {
	prefix    string
	versioned bool
}

func (x *releaseAsset) template() string {
	return githubRelease + x.prefix + "{version}/{filename}.phar"
}

func (x *releaseAsset) filename(repo *model.TrackedRepository, version string) string {
	if x.versioned {
		return repo.ShortName() + "-" + version
	}
	return repo.ShortName()
}

func (x *releaseAsset) fixed() bool { return false }

// fixedHost serves artifacts outside GitHub at a well known location.
type fixedHost struct {
	format string
}

func (x *fixedHost) template() string {
	return x.format
}

func (x *fixedHost) filename(repo *model.TrackedRepository, _ string) string {
	return repo.ShortName()
}

func (x *fixedHost) fixed() bool { return true }
