package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/locktfin/internal/catalog"
	"github.com/ayoisaiah/locktfin/internal/config"
	"github.com/ayoisaiah/locktfin/internal/hook"
	"github.com/ayoisaiah/locktfin/internal/models"
	"github.com/ayoisaiah/locktfin/internal/notify"
	"github.com/ayoisaiah/locktfin/internal/pathutil"
	"github.com/ayoisaiah/locktfin/internal/session"
	"github.com/ayoisaiah/locktfin/internal/timeutil"
	"github.com/ayoisaiah/locktfin/internal/ui"
	"github.com/ayoisaiah/locktfin/report"
	"github.com/ayoisaiah/locktfin/stats"
	"github.com/ayoisaiah/locktfin/store"
	"github.com/ayoisaiah/locktfin/timer"
)

const (
	envNoColor         = "NO_COLOR"
	envLocktfinNoColor = "LOCKTFIN_NO_COLOR"

	noSessionsMsg = "No sessions found"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// sessionConfig builds the session from the command line, or prompts for it
// when no applications were given.
func sessionConfig(
	cfg *config.Config,
	cat *catalog.Catalog,
) (models.SessionConfig, error) {
	if len(cfg.CLI.Apps) == 0 {
		return promptSession(cat, cfg)
	}

	apps, unknown := cat.Resolve(cfg.CLI.Apps)
	if len(unknown) > 0 {
		return models.SessionConfig{}, errUnknownApps.Fmt(
			strings.Join(unknown, ", "),
		)
	}

	return models.SessionConfig{
		SelectedApps:           apps,
		PlannedDurationMinutes: cfg.PlannedDuration(),
	}, nil
}

// newNotifier returns the desktop notifier unless notifications are off.
func newNotifier(e *env) (notify.Notifier, func()) {
	if !e.cfg.Notifications.Enabled {
		return notify.Noop{}, func() {}
	}

	d := notify.NewDesktop(e.paths.IconFile, e.logger)

	return d, d.Wait
}

// defaultAction starts a focus session and shows its countdown until it
// ends.
func defaultAction(ctx *cli.Context) error {
	e, err := prepare(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	sessCfg, err := sessionConfig(e.cfg, catalog.New(e.cfg.Apps))
	if err != nil {
		return err
	}

	err = session.Validate(sessCfg)
	if err != nil {
		return err
	}

	history, db, err := e.openHistory()
	if err != nil {
		return err
	}

	defer db.Close()

	notifier, waitNotify := newNotifier(e)
	defer waitNotify()

	var hooks sync.WaitGroup

	defer hooks.Wait()

	ctrl := session.New(
		history,
		session.WithNotifier(notifier),
		session.WithLogger(e.logger),
		session.WithDateLayout(e.cfg.Display.DateFormat),
		session.OnEnd(func(rec models.SessionRecord) {
			hooks.Add(1)

			go func() {
				defer hooks.Done()

				err := hook.Run(context.Background(), e.cfg.Settings.Cmd, rec)
				if err != nil {
					e.logger.Warn("session command failed", slog.Any("error", err))
				}
			}()
		}),
	)

	defer ctrl.Wait()

	err = ctrl.Start(sessCfg)
	if err != nil {
		return err
	}

	t := timer.New(ctrl, timer.Options{
		Logger:     e.logger,
		ExitKey:    e.cfg.Settings.ExitKey,
		StatusFile: e.paths.StatusFile,
		DarkTheme:  e.cfg.Display.DarkTheme,
	})

	_, err = tea.NewProgram(t).Run()
	if err != nil {
		// the session must not outlive the program
		ctrl.EmergencyExit()
		_ = timer.RemoveStatus(e.paths.StatusFile)

		return err
	}

	if rec, ok := t.Result(); ok {
		report.SessionEnded(rec)
	}

	return nil
}

// statsAction prints the session statistics.
func statsAction(ctx *cli.Context) error {
	e, err := prepare(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	history, db, err := e.openHistory()
	if err != nil {
		return err
	}

	defer db.Close()

	s := stats.Compute(history, ctx.Int("recent"))

	if ctx.Bool("json") {
		b, err := s.ToJSON()
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	return s.Render(os.Stdout)
}

// historyAction lists recorded sessions, optionally limited to those started
// after --since.
func historyAction(ctx *cli.Context) error {
	e, err := prepare(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	history, db, err := e.openHistory()
	if err != nil {
		return err
	}

	defer db.Close()

	records := history.Records()

	if since := ctx.String("since"); since != "" {
		t, err := timeutil.FromStr(since, time.Now())
		if err != nil {
			return err
		}

		records = history.Since(t)
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(records)
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	if len(records) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	return stats.List(os.Stdout, records)
}

// appsAction lists the application catalog.
func appsAction(ctx *cli.Context) error {
	e, err := prepare(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	apps := catalog.New(e.cfg.Apps).Sorted()

	data := make([][]string, 0, len(apps)+1)
	data = append(data, []string{"", "NAME", "PATH"})

	for _, app := range apps {
		data = append(data, []string{app.Icon, ui.Highlight(app.Name), app.Path})
	}

	return ui.PrintTable(data, os.Stdout)
}

// statusAction prints the time left in the running session, if any.
func statusAction(_ *cli.Context) error {
	paths, err := pathutil.Resolve()
	if err != nil {
		return err
	}

	// the database is only locked while a session runs
	if !store.InUse(paths.DBFile) {
		return nil
	}

	s, err := timer.ReadStatus(paths.StatusFile)
	if err != nil || s == nil {
		return err
	}

	return s.Report(os.Stdout, time.Now())
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	e, err := prepare(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, e.paths.ConfigFile)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if _, exists := os.LookupEnv(envNoColor); exists {
		ui.DisableStyling()
	}

	if _, exists := os.LookupEnv(envLocktfinNoColor); exists {
		ui.DisableStyling()
	}

	if ctx.Bool("no-color") {
		ui.DisableStyling()
	}

	return nil
}
