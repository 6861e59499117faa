package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/clog/hooks"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))

func init() {
	_ = Configure("text", "info", "stdout")
}

// Default returns the process wide logger. Request and check scoped loggers
// derived from it are carried by context, see From.
func Default() *slog.Logger {
	return defaultLogger
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Configure replaces the default logger. logOutput is "stdout" (or "-"),
// "stderr" or a file path.
func Configure(logFormat, logLevel, logOutput string) error {
	level, ok := levels[logLevel]
	if !ok {
		return goerr.Wrap(types.ErrInvalidOption, "invalid log level", goerr.V("value", logLevel))
	}

	w, err := openOutput(logOutput)
	if err != nil {
		return err
	}

	handler, err := newHandler(logFormat, level, w)
	if err != nil {
		return err
	}

	defaultLogger = slog.New(handler)
	return nil
}

func openOutput(logOutput string) (io.Writer, error) {
	switch logOutput {
	case "stdout", "-":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}

	fd, err := os.OpenFile(filepath.Clean(logOutput), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", logOutput))
	}
	return fd, nil
}

// secretFilter masks credentials that reach log attributes, including the
// ones nested in config structs.
func secretFilter() func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(
		masq.WithTag("secret"),
		masq.WithType[types.GitHubToken](masq.MaskWithSymbol('*', 16)),
		masq.WithType[types.GitHubAppPrivateKey](masq.MaskWithSymbol('*', 16)),
		masq.WithType[types.GitHubWebhookSecret](masq.MaskWithSymbol('*', 16)),
		masq.WithType[types.SlackWebhookURL](masq.MaskWithSymbol('*', 16)),
		masq.WithType[types.DatabaseDSN](masq.MaskWithSymbol('*', 16)),
	)
}

func newHandler(logFormat string, level slog.Level, w io.Writer) (slog.Handler, error) {
	switch logFormat {
	case "text":
		return clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithSource(true),
			clog.WithColorMap(&clog.ColorMap{
				Level: map[slog.Level]*color.Color{
					slog.LevelDebug: color.New(color.FgGreen, color.Bold),
					slog.LevelInfo:  color.New(color.FgCyan, color.Bold),
					slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
					slog.LevelError: color.New(color.FgRed, color.Bold),
				},
				LevelDefault: color.New(color.FgBlue, color.Bold),
				Time:         color.New(color.FgWhite),
				Message:      color.New(color.FgHiWhite),
				AttrKey:      color.New(color.FgHiCyan),
				AttrValue:    color.New(color.FgHiWhite),
			}),
			clog.WithAttrHook(hooks.GoErr()),
			clog.WithReplaceAttr(secretFilter()),
		), nil

	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: secretFilter(),
		}), nil
	}

	return nil, goerr.Wrap(types.ErrInvalidOption, "invalid log format, should be 'json' or 'text'", goerr.V("value", logFormat))
}
