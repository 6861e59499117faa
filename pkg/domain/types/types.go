package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	// RepoName is the identity of a tracked repository, e.g. "homebrew/php/composer".
	RepoName   string
	CommitID   string
	BranchName string
	RequestID  string
	HistoryID  string

	SlackWebhookURL string
	DatabaseDSN     string
)

func (x RepoName) String() string { return string(x) }

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func NewHistoryID() HistoryID {
	return HistoryID(uuid.NewString())
}

func (x SlackWebhookURL) LogValue() slog.Value {
	if x == "" {
		return slog.StringValue("")
	}
	return slog.StringValue("***********")
}

func (x DatabaseDSN) LogValue() slog.Value {
	if x == "" {
		return slog.StringValue("")
	}
	return slog.StringValue("***********")
}

// ResolverStrategy selects how the latest version and its archive are resolved
// for a tracked repository.
type ResolverStrategy string

const (
	StrategyTagTarball          ResolverStrategy = "tag-tarball"
	StrategyTagTarballPrefixV   ResolverStrategy = "tag-tarball-v"
	StrategyReleaseAsset        ResolverStrategy = "release-asset"
	StrategyReleaseAssetPrefixV ResolverStrategy = "release-asset-v"
	StrategyReleaseAssetVersion ResolverStrategy = "release-asset-versioned"
	StrategyComposer            ResolverStrategy = "composer"
	StrategyPHPUnit             ResolverStrategy = "phpunit"
	StrategyPHPMyAdmin          ResolverStrategy = "phpmyadmin"
)

var ResolverStrategies = []ResolverStrategy{
	StrategyTagTarball,
	StrategyTagTarballPrefixV,
	StrategyReleaseAsset,
	StrategyReleaseAssetPrefixV,
	StrategyReleaseAssetVersion,
	StrategyComposer,
	StrategyPHPUnit,
	StrategyPHPMyAdmin,
}

func (x ResolverStrategy) Valid() bool {
	for _, s := range ResolverStrategies {
		if s == x {
			return true
		}
	}
	return false
}

// VersionRule names the tag normalization rule of a tracked repository.
// An empty rule means the identity based default.
type VersionRule string

const (
	VersionRuleDefault           VersionRule = ""
	VersionRuleStripV            VersionRule = "strip-v"
	VersionRuleReleaseUnderscore VersionRule = "release-underscore"
)

func (x VersionRule) Valid() bool {
	switch x {
	case VersionRuleDefault, VersionRuleStripV, VersionRuleReleaseUnderscore:
		return true
	}
	return false
}
