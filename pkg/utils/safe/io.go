package safe

import (
	"database/sql"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/m-mizutani/brewup/pkg/utils/logging"
)

// Close closes the resource and only logs the failure. It is for deferred
// cleanup where the error cannot change the result anymore.
func Close(closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && !errors.Is(err, io.EOF) {
		logging.Default().Warn("failed to close resource", slog.Any("error", err))
	}
}

// Remove deletes a file that may already be gone, e.g. a temp file renamed into place.
func Remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Default().Warn("failed to remove file", slog.String("path", path), slog.Any("error", err))
	}
}

// Rollback aborts tx unless it is already committed.
func Rollback(tx *sql.Tx) {
	if tx == nil {
		return
	}
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logging.Default().Warn("failed to rollback transaction", slog.Any("error", err))
	}
}
