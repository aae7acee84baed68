package app

import (
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/locktfin/internal/config"
	"github.com/ayoisaiah/locktfin/internal/logging"
	"github.com/ayoisaiah/locktfin/internal/pathutil"
	"github.com/ayoisaiah/locktfin/internal/sessionlog"
	"github.com/ayoisaiah/locktfin/internal/ui"
	"github.com/ayoisaiah/locktfin/store"
)

// env is what every command needs before it can do any work.
type env struct {
	paths  *pathutil.Paths
	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
}

// prepare resolves file locations, starts logging and loads the config.
func prepare(ctx *cli.Context) (*env, error) {
	paths, err := pathutil.Resolve()
	if err != nil {
		return nil, err
	}

	closer, err := logging.Setup(logging.Options{
		Path: paths.LogFile,
	})
	if err != nil {
		return nil, err
	}

	cfg, err := config.New(
		config.WithViperConfig(paths.ConfigFile),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return &env{
		paths:  paths,
		cfg:    cfg,
		logger: slog.Default(),
		closer: closer,
	}, nil
}

func (e *env) Close() error {
	return e.closer.Close()
}

// openHistory opens the database and loads the session history from it.
func (e *env) openHistory() (*sessionlog.Log, *store.Client, error) {
	db, err := store.NewClient(e.paths.DBFile)
	if err != nil {
		return nil, nil, err
	}

	history := sessionlog.New(db, e.logger)
	history.Load()

	return history, db, nil
}
