package testutil_test

import (
	"path/filepath"
	"testing"

	"github.com/m-mizutani/brewup/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Setenv("TEST_BREWUP_ENV_VAR", "test_value")
	gt.V(t, testutil.GetEnvOrSkip(t, "TEST_BREWUP_ENV_VAR")).Equal("test_value")
}

func TestWriteAndReadFiles(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"composer.rb": "class Composer < Formula\nend\n",
		"phpunit.rb":  "class Phpunit < Formula\nend\n",
	})

	gt.V(t, testutil.ReadFile(t, filepath.Join(dir, "composer.rb"))).Equal("class Composer < Formula\nend\n")
	gt.S(t, testutil.ReadFile(t, filepath.Join(dir, "phpunit.rb"))).Contains("Phpunit")
}
