// Package logging configures the structured log written by locktfin
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/locktfin/internal/osutil"
)

const envDebug = "LOCKTFIN_DEBUG"

// Options controls where logs go and how much is written.
type Options struct {
	// Writer overrides the rotating log file. Used by tests.
	Writer io.Writer
	Path   string
	Debug  bool
}

// New returns a JSON logger writing to a rotating file at opts.Path, or to
// opts.Writer if set. The returned closer releases the file.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if opts.Debug || debugFromEnv() {
		level = slog.LevelDebug
	}

	var (
		w      io.Writer = opts.Writer
		closer io.Closer = nopCloser{}
	)

	if w == nil {
		err := os.MkdirAll(filepath.Dir(opts.Path), osutil.DirPermission)
		if err != nil {
			return nil, nil, err
		}

		lj := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}

		w, closer = lj, lj
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	return logger, closer, nil
}

// Setup builds the logger with New and installs it as the slog default.
func Setup(opts Options) (io.Closer, error) {
	logger, closer, err := New(opts)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)

	return closer, nil
}

func debugFromEnv() bool {
	v := strings.TrimSpace(os.Getenv(envDebug))

	return v != "" && v != "0" && !strings.EqualFold(v, "false")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
