package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/loginform/internal/session"
)

// homeModel is the post-login view. It reads the logout action from the
// broadcaster rather than receiving it from the app.
type homeModel struct {
	bc     *session.Broadcaster
	width  int
	height int
}

func newHomeModel(bc *session.Broadcaster) homeModel {
	return homeModel{bc: bc}
}

func (m homeModel) Update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if msg.String() == "x" {
			m.bc.Current().OnLogout()
		}
	}
	return m, nil
}

func (m homeModel) View() string {
	return cardStyle.Render(welcomeStyle.Render("Welcome back!") + "\n\n" +
		dimStyle.Render("You are logged in. Press x to log out."))
}
