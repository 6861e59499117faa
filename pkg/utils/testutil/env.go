package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// WriteFiles creates files under dir, keyed by file name.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		gt.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

// ReadFile returns content of path as string and fails the test if it cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	return string(gt.R1(os.ReadFile(path)).NoError(t))
}
