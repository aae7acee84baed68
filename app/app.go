// Package app defines the locktfin command-line interface
package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/locktfin/internal/config"
)

// Get retrieves the locktfin app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "locktfin",
		Usage: `
		locktfin is a focus timer for the command-line. Pick the applications
		you need, set a time limit and stay with them until the countdown ends.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "stats",
				Usage:  "Show total focus time, completion rate and recent sessions",
				Flags:  []cli.Flag{recentFlag, jsonFlag},
				Action: statsAction,
			},
			{
				Name:   "history",
				Usage:  "List recorded sessions",
				Flags:  []cli.Flag{sinceFlag, jsonFlag},
				Action: historyAction,
			},
			{
				Name:   "apps",
				Usage:  "List the applications that can be selected for a session",
				Action: appsAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running session",
				Action: statusAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			appFlag,
			durationFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			exitKeyFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}
}
