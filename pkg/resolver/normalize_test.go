package resolver_test

import (
	"testing"

	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/resolver"
	"github.com/m-mizutani/gt"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name   string
		rule   types.VersionRule
		raw    string
		expect string
	}{
		{name: "strip leading v", rule: types.VersionRuleStripV, raw: "v1.2.3", expect: "1.2.3"},
		{name: "keep version without v", rule: types.VersionRuleStripV, raw: "1.2.3", expect: "1.2.3"},
		{name: "strip only one v", rule: types.VersionRuleStripV, raw: "vv1.0", expect: "v1.0"},
		{name: "keep pre-release suffix", rule: types.VersionRuleStripV, raw: "v2.0.0-RC1", expect: "2.0.0-RC1"},
		{name: "release underscore", rule: types.VersionRuleReleaseUnderscore, raw: "RELEASE_4_7_0", expect: "4.7.0"},
		{name: "release underscore keeps suffix", rule: types.VersionRuleReleaseUnderscore, raw: "RELEASE_4_7_0RC1", expect: "4.7.0RC1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, resolver.Normalize(tc.rule, tc.raw)).Equal(tc.expect)
		})
	}
}

func TestRuleFor(t *testing.T) {
	t.Run("identity override is selected by name", func(t *testing.T) {
		gt.V(t, resolver.RuleFor("homebrew/php/phpmyadmin", "")).Equal(types.VersionRuleReleaseUnderscore)
	})

	t.Run("tag text does not select override", func(t *testing.T) {
		rule := resolver.RuleFor("homebrew/php/other", "")
		gt.V(t, rule).Equal(types.VersionRuleStripV)
		gt.V(t, resolver.Normalize(rule, "RELEASE_1_0_0")).Equal("RELEASE_1_0_0")
	})

	t.Run("explicit rule on record wins", func(t *testing.T) {
		gt.V(t, resolver.RuleFor("homebrew/php/phpmyadmin", types.VersionRuleStripV)).Equal(types.VersionRuleStripV)
	})
}
