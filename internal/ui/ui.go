// Package ui holds the console styling shared by locktfin commands
package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// DarkTheme selects the lighter colour variants.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Outcome labels a session as completed or interrupted.
func Outcome(completed bool) string {
	if completed {
		return Green("Completed")
	}

	return Yellow("Interrupted")
}

// DisableStyling turns off colours and prefixes in all pterm output.
func DisableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
}

// PrintTable writes data as a boxed table whose first row is the header.
func PrintTable(data [][]string, w io.Writer) error {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, str)

	return err
}
