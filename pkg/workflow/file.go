package workflow

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/brewup/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

var (
	checkoutLocks safe.KeyedMutex
	fileLocks     safe.KeyedMutex
)

// editFile applies fn to the content of path and writes the result back.
// Writers of the same path in this process are serialized and the new
// content replaces the file atomically.
func editFile(path string, fn func([]byte) ([]byte, error)) error {
	path = filepath.Clean(path)
	unlock := fileLocks.Lock(path)
	defer unlock()

	info, err := os.Stat(path)
	if err != nil {
		return goerr.Wrap(err, "failed to stat definition file", goerr.V("path", path))
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read definition file", goerr.V("path", path))
	}

	updated, err := fn(content)
	if err != nil {
		return goerr.Wrap(err, "failed to patch definition file", goerr.V("path", path))
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("path", path))
	}
	defer safe.Remove(tmp.Name())

	if _, err := tmp.Write(updated); err != nil {
		safe.Close(tmp)
		return goerr.Wrap(err, "failed to write temp file", goerr.V("path", tmp.Name()))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temp file", goerr.V("path", tmp.Name()))
	}
	if err := os.Chmod(tmp.Name(), info.Mode().Perm()); err != nil {
		return goerr.Wrap(err, "failed to chmod temp file", goerr.V("path", tmp.Name()))
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return goerr.Wrap(err, "failed to replace definition file", goerr.V("path", path))
	}

	return nil
}
