package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	SessionCmd    string
	ExitKey       string
	Apps          []string
	Duration      int
	DurationSet   bool
	DisableNotify bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Apps:          ctx.StringSlice("app"),
			Duration:      ctx.Int("duration"),
			DurationSet:   ctx.IsSet("duration"),
			SessionCmd:    ctx.String("session-cmd"),
			ExitKey:       ctx.String("exit-key"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	c.CLI.Apps = splitAndTrim(opts.Apps)
	c.CLI.Duration = opts.Duration
	c.CLI.DurationSet = opts.DurationSet

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.ExitKey != "" {
		c.Settings.ExitKey = opts.ExitKey
	}
}

// splitAndTrim splits comma-separated values and trims whitespace, dropping
// empty entries. Paths containing commas must be passed with separate flags.
func splitAndTrim(values []string) []string {
	var out []string

	for _, v := range values {
		for _, s := range strings.Split(v, ",") {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	}

	return out
}
