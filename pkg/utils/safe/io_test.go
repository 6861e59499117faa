package safe_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/brewup/pkg/utils/safe"
	"github.com/m-mizutani/gt"
)

type closer struct {
	err    error
	called bool
}

func (x *closer) Close() error {
	x.called = true
	return x.err
}

func TestClose(t *testing.T) {
	t.Run("close reader", func(t *testing.T) {
		safe.Close(io.NopCloser(bytes.NewReader([]byte("test"))))
	})

	t.Run("nil closer is ignored", func(t *testing.T) {
		safe.Close(nil)
	})

	t.Run("error of close is swallowed", func(t *testing.T) {
		c := &closer{err: io.ErrUnexpectedEOF}
		safe.Close(c)
		gt.True(t, c.called)
	})
}

func TestRemove(t *testing.T) {
	t.Run("remove existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "formula.rb.tmp")
		gt.NoError(t, os.WriteFile(path, []byte("class Example < Formula\nend\n"), 0644))

		safe.Remove(path)

		_, err := os.Stat(path)
		gt.True(t, os.IsNotExist(err))
	})

	t.Run("file already renamed away", func(t *testing.T) {
		safe.Remove(filepath.Join(t.TempDir(), "missing.rb.tmp"))
	})
}

func TestRollback(t *testing.T) {
	safe.Rollback(nil)
}
