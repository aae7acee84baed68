package app

import "github.com/urfave/cli/v2"

var (
	appFlag = &cli.StringSliceFlag{
		Name:    "app",
		Aliases: []string{"a"},
		Usage:   "Allow an application during the session by name or path. Repeat or comma-separate for more than one",
	}

	durationFlag = &cli.IntFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Session length in minutes (1-480). Defaults to session.duration in the config file",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the system notifications sent when a session starts and ends",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	exitKeyFlag = &cli.StringFlag{
		Name:  "exit-key",
		Usage: "Key that ends the active session early (default: ctrl+e)",
	}

	recentFlag = &cli.IntFlag{
		Name:  "recent",
		Usage: "Number of recent sessions to list",
		Value: 5,
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only list sessions started on or after this date (e.g. 'yesterday', '3 days ago', '2025-03-01')",
	}
)
