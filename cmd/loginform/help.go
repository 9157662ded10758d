package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

func printHelp(w io.Writer) {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a78bfa")).
		Bold(true).
		Render("L O G I N F O R M")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	commands := []struct{ cmd, desc string }{
		{"loginform", "Open the login form (interactive TUI)"},
		{"loginform status", "Show whether you are logged in"},
		{"loginform login [email]", "Log in without the TUI"},
		{"loginform logout", "Clear the saved login"},
		{"loginform --version", "Show version"},
		{"loginform help", "You are here"},
	}

	fmt.Fprintf(w, "\n  %s\n\n  Commands:\n", title) //nolint:errcheck
	for _, c := range commands {
		fmt.Fprintf(w, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-24s", c.cmd)), descStyle.Render(c.desc)) //nolint:errcheck
	}

	env := []struct{ name, desc string }{
		{"LOGINFORM_STATE_DIR", "where the login flag is kept (~/.loginform)"},
		{"LOGINFORM_LOG_FILE", "write logs to this file"},
		{"LOGINFORM_LOG_LEVEL", "debug, info, warn or error"},
		{"LOGINFORM_ALT_SCREEN", "use the alternate screen (true)"},
	}
	fmt.Fprintf(w, "\n  Environment:\n") //nolint:errcheck
	for _, e := range env {
		fmt.Fprintf(w, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-24s", e.name)), descStyle.Render(e.desc)) //nolint:errcheck
	}
	fmt.Fprintln(w) //nolint:errcheck
}
