package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/naveenspark/loginform/internal/debounce"
	"github.com/naveenspark/loginform/internal/logging"
	"github.com/naveenspark/loginform/pkg/domain"
)

// validateDelay is the quiet period before the form validity is recomputed.
const validateDelay = 500 * time.Millisecond

// fieldWidth is the number of cells a field value may occupy.
const fieldWidth = 32

type loginFocus int

const (
	focusEmail loginFocus = iota
	focusPassword
	focusSubmit
	numFocus
)

// field maps a focus position to the form field it edits.
func (f loginFocus) field() (domain.Field, bool) {
	switch f {
	case focusEmail:
		return domain.FieldEmail, true
	case focusPassword:
		return domain.FieldPassword, true
	}
	return 0, false
}

// LoginFunc receives the submitted credentials.
type LoginFunc func(ctx context.Context, creds domain.Credentials) error

// validateMsg is produced when the debounce timer elapses.
type validateMsg struct{}

// pasteMsg carries clipboard contents for the field that requested them.
type pasteMsg struct {
	form  uuid.UUID
	field domain.Field
	text  string
	err   error
}

// readClipboard is swapped in tests.
var readClipboard = clipboard.ReadAll

type loginModel struct {
	form      domain.Form
	focus     loginFocus
	touched   [2]bool
	timer     debounce.Timer
	onLogin   LoginFunc
	log       logging.Logger
	statusMsg string
	width     int
}

func newLoginModel(onLogin LoginFunc, log logging.Logger) loginModel {
	timer := debounce.New(validateDelay)
	return loginModel{
		timer:   timer,
		onLogin: onLogin,
		log:     log.With("form_id", timer.ID().String()),
	}
}

// mount arms the first validity check, like any later validity change would.
func (m loginModel) mount() (loginModel, tea.Cmd) {
	m.log.Debug(context.Background(), "login form mounted")
	cmd := m.armValidation()
	return m, cmd
}

// unmount drops any pending validity check.
func (m loginModel) unmount() loginModel {
	m.timer.Cancel()
	m.log.Debug(context.Background(), "login form unmounted")
	return m
}

func (m *loginModel) armValidation() tea.Cmd {
	return m.timer.Arm(func() tea.Msg { return validateMsg{} })
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case debounce.FiredMsg:
		inner, ok := m.timer.Accept(msg)
		if !ok {
			return m, nil
		}
		if _, ok := inner.(validateMsg); ok {
			m.form = m.form.Commit()
			m.log.Debug(context.Background(), "checking inputs",
				"email_valid", m.form.Email.IsValid,
				"password_valid", m.form.Password.IsValid,
				"form_valid", m.form.Valid)
		}
		return m, nil

	case pasteMsg:
		if msg.form != m.timer.ID() {
			return m, nil
		}
		if msg.err != nil {
			m.statusMsg = "clipboard unavailable"
			m.log.Warn(context.Background(), "clipboard read failed", "err", msg.err)
			return m, nil
		}
		return m.input(msg.field, appendPaste(m.form.Field(msg.field).Value, msg.text))

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m loginModel) updateKeys(msg tea.KeyMsg) (loginModel, tea.Cmd) {
	m.statusMsg = ""

	if msg.Paste {
		if f, ok := m.focus.field(); ok {
			return m.input(f, appendPaste(m.form.Field(f).Value, string(msg.Runes)))
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+s":
		if !m.form.Valid {
			return m, nil
		}
		return m.submit()
	case "tab", "down":
		return m.moveFocus((m.focus + 1) % numFocus)
	case "shift+tab", "up":
		return m.moveFocus((m.focus - 1 + numFocus) % numFocus)
	case "enter":
		if m.focus == focusSubmit {
			if !m.form.Valid {
				return m, nil
			}
			return m.submit()
		}
		return m.moveFocus(m.focus + 1)
	case "ctrl+v":
		if f, ok := m.focus.field(); ok {
			return m, pasteCmd(m.timer.ID(), f)
		}
		return m, nil
	case "ctrl+u":
		if f, ok := m.focus.field(); ok {
			return m.input(f, "")
		}
		return m, nil
	default:
		f, ok := m.focus.field()
		if !ok {
			return m, nil
		}
		current := m.form.Field(f).Value
		var next string
		if msg.Type == tea.KeyRunes && !msg.Alt {
			next = appendPaste(current, string(msg.Runes))
		} else {
			next = editRune(current, msg.String())
		}
		if next == current {
			return m, nil
		}
		return m.input(f, next)
	}
}

// input applies a value change to f and re-arms the validity check when the
// field's validity flipped.
func (m loginModel) input(f domain.Field, v string) (loginModel, tea.Cmd) {
	var changed bool
	m.form, changed = m.form.Input(f, v)
	m.touched[f] = true
	if !changed {
		return m, nil
	}
	cmd := m.armValidation()
	return m, cmd
}

// moveFocus blurs the field being left, if any.
func (m loginModel) moveFocus(to loginFocus) (loginModel, tea.Cmd) {
	var cmd tea.Cmd
	if f, ok := m.focus.field(); ok {
		var changed bool
		m.form, changed = m.form.Blur(f)
		m.touched[f] = true
		if changed {
			cmd = m.armValidation()
		}
	}
	m.focus = to
	return m, cmd
}

// submit hands the current values to onLogin. Callers gate it on form
// validity; the disabled button is the only enforcement.
func (m loginModel) submit() (loginModel, tea.Cmd) {
	if m.onLogin == nil {
		return m, nil
	}
	if err := m.onLogin(context.Background(), m.form.Credentials()); err != nil {
		m.statusMsg = "login failed: " + err.Error()
		m.log.Error(context.Background(), "login failed", "err", err)
	}
	return m, nil
}

func pasteCmd(form uuid.UUID, f domain.Field) tea.Cmd {
	return func() tea.Msg {
		text, err := readClipboard()
		return pasteMsg{form: form, field: f, text: text, err: err}
	}
}

func (m loginModel) View(frame int) string {
	var b strings.Builder

	rows := []struct {
		label       string
		field       domain.Field
		placeholder string
		hint        string
		masked      bool
	}{
		{"E-Mail", domain.FieldEmail, "you@example.com", "must contain @", false},
		{"Password", domain.FieldPassword, "at least 7 characters", "at least 7 characters", true},
	}

	for i, r := range rows {
		focused := m.focus == loginFocus(i)
		state := m.form.Field(r.field)
		invalid := m.touched[r.field] && !state.IsValid

		cursor := " "
		labelStyle := metaStyle
		if focused {
			cursor = accentStyle.Render(">")
			labelStyle = selectedStyle
		}
		if invalid {
			labelStyle = invalidLabelStyle
		}

		value := renderFieldInput(state.Value, r.placeholder, r.masked, focused, fieldWidth, frame)
		mark := ""
		switch {
		case invalid:
			mark = "  " + invalidStyle.Render("✗ "+r.hint)
		case state.IsValid:
			mark = "  " + validMarkStyle.Render("✓")
		}
		fmt.Fprintf(&b, "%s %s %s%s\n", cursor, labelStyle.Render(fmt.Sprintf("%-9s", r.label)), value, mark)
	}

	b.WriteString("\n")
	button := "Login"
	cursor := " "
	switch {
	case !m.form.Valid:
		button = buttonDisabledStyle.Render(button)
	case m.focus == focusSubmit:
		button = buttonFocusedStyle.Render(button)
	default:
		button = buttonStyle.Render(button)
	}
	if m.focus == focusSubmit {
		cursor = accentStyle.Render(">")
	}
	fmt.Fprintf(&b, "%s %s\n", cursor, button)

	if m.statusMsg != "" {
		w := m.width - 8
		if w < 20 {
			w = 20
		}
		b.WriteString("\n" + invalidStyle.Render(truncStr(m.statusMsg, w)))
	}

	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}
