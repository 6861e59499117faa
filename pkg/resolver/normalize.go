package resolver

import (
	"strings"

	"github.com/m-mizutani/brewup/pkg/domain/types"
)

// versionRuleOverrides selects a normalization rule by repository identity.
// Tag text alone is ambiguous, so the rule is never guessed from it.
var versionRuleOverrides = map[types.RepoName]types.VersionRule{
	"homebrew/php/phpmyadmin": types.VersionRuleReleaseUnderscore,
}

// RuleFor returns the normalization rule of a repository. An explicit rule on
// the record wins over the identity based override table.
func RuleFor(name types.RepoName, rule types.VersionRule) types.VersionRule {
	if rule != types.VersionRuleDefault {
		return rule
	}
	if r, ok := versionRuleOverrides[name]; ok {
		return r
	}
	return types.VersionRuleStripV
}

// Normalize converts a raw tag into a version by rule.
//
//	strip-v:            v1.2.3        -> 1.2.3
//	release-underscore: RELEASE_4_7_0 -> 4.7.0
func Normalize(rule types.VersionRule, raw string) string {
	switch rule {
	case types.VersionRuleReleaseUnderscore:
		return strings.ReplaceAll(strings.TrimPrefix(raw, "RELEASE_"), "_", ".")
	default:
		return strings.TrimPrefix(raw, "v")
	}
}
