package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/loginform/internal/logging"
	"github.com/naveenspark/loginform/internal/session"
)

// App is the root Bubbletea model. It shows the login form or the home view
// depending on the broadcast session flag.
type App struct {
	bc          *session.Broadcaster
	onLogin     LoginFunc
	log         logging.Logger
	login       loginModel
	loginActive bool
	home        homeModel
	width       int
	height      int
	frame       int // title shimmer and cursor blink
	pending     tea.Cmd
}

// NewApp creates the TUI. onLogin is called with the submitted credentials;
// the app switches views once the broadcaster reports the new state.
func NewApp(bc *session.Broadcaster, onLogin LoginFunc, log logging.Logger) App {
	a := App{
		bc:      bc,
		onLogin: onLogin,
		log:     log.With("component", "tui"),
		home:    newHomeModel(bc),
	}
	a, a.pending = a.sync()
	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(shimmerTickCmd(), a.pending)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + help(1) = 3 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 3}
		a.home, _ = a.home.Update(bodyMsg)
		a.login, _ = a.login.Update(bodyMsg)

	case shimmerTickMsg:
		a.frame++
		cmd = shimmerTickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a.quit()
		case "esc":
			if a.loginActive {
				return a.quit()
			}
		case "q":
			if !a.loginActive {
				return a.quit()
			}
		}
		cmd = a.route(msg)

	default:
		cmd = a.route(msg)
	}

	var mountCmd tea.Cmd
	a, mountCmd = a.sync()
	if mountCmd == nil {
		return a, cmd
	}
	return a, tea.Batch(cmd, mountCmd)
}

// route forwards msg to whichever view is active.
func (a *App) route(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if a.loginActive {
		a.login, cmd = a.login.Update(msg)
	} else {
		a.home, cmd = a.home.Update(msg)
	}
	return cmd
}

// sync mounts or unmounts the login form to match the broadcast flag. A
// fresh form is mounted each time, so field values never outlive a session.
func (a App) sync() (App, tea.Cmd) {
	loggedIn := a.bc.Current().IsLoggedIn
	switch {
	case loggedIn && a.loginActive:
		a.login = a.login.unmount()
		a.loginActive = false
	case !loggedIn && !a.loginActive:
		var cmd tea.Cmd
		a.login = newLoginModel(a.onLogin, a.log)
		a.login, _ = a.login.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height - 3})
		a.login, cmd = a.login.mount()
		a.loginActive = true
		return a, cmd
	}
	return a, nil
}

func (a App) quit() (tea.Model, tea.Cmd) {
	if a.loginActive {
		a.login = a.login.unmount()
	}
	a.log.Debug(context.Background(), "quitting")
	return a, tea.Quit
}

func (a App) header() string {
	title := renderShimmerLogo(pageTitle, a.frame)

	// The nav reads the flag itself; nothing hands it down.
	nav := ""
	if a.bc.Current().IsLoggedIn {
		nav = navStyle.Render("Users") + "   " + navStyle.Render("Admin") + "   " +
			accentStyle.Render("x") + " " + navStyle.Render("Logout")
	}

	gap := a.width - lipgloss.Width(title) - lipgloss.Width(nav) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + title + strings.Repeat(" ", gap) + nav + "\n"
}

func (a App) View() string {
	var body, help string
	if a.loginActive {
		body = a.login.View(a.frame)
		help = " " + helpEntry("tab", "next") + "  " + helpEntry("enter", "next/login") + "  " +
			helpEntry("ctrl+s", "login") + "  " + helpEntry("ctrl+v", "paste") + "  " + helpEntry("esc", "quit")
	} else {
		body = a.home.View()
		help = " " + helpEntry("x", "logout") + "  " + helpEntry("q", "quit")
	}

	// Center the card horizontally.
	if a.width > 0 {
		body = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, body)
	}

	// Chrome budget: header(2) + help(1) = 3 lines + body
	chrome := 3
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s", a.header(), body, help)
}
