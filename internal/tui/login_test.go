package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/loginform/internal/debounce"
	"github.com/naveenspark/loginform/internal/logging"
	"github.com/naveenspark/loginform/pkg/domain"
)

type loginRecorder struct {
	calls []domain.Credentials
	err   error
}

func (r *loginRecorder) login(_ context.Context, c domain.Credentials) error {
	r.calls = append(r.calls, c)
	return r.err
}

func newTestLoginModel(rec *loginRecorder) loginModel {
	m := newLoginModel(rec.login, logging.Discard())
	m.width = 80
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText sends one key per rune and returns the last non-nil command.
func typeText(m loginModel, text string) (loginModel, tea.Cmd) {
	var last tea.Cmd
	for _, r := range text {
		var cmd tea.Cmd
		m, cmd = m.Update(runeKey(string(r)))
		if cmd != nil {
			last = cmd
		}
	}
	return m, last
}

// fired blocks for the debounce delay and returns the firing.
func fired(t *testing.T, cmd tea.Cmd) debounce.FiredMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a debounce command, got nil")
	}
	raw := cmd()
	msg, ok := raw.(debounce.FiredMsg)
	if !ok {
		t.Fatalf("expected debounce.FiredMsg, got %T", raw)
	}
	return msg
}

// fillForm types both fields and returns the last armed command.
func fillForm(m loginModel, email, password string) (loginModel, tea.Cmd) {
	var last, cmd tea.Cmd
	m, cmd = typeText(m, email)
	if cmd != nil {
		last = cmd
	}
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if cmd != nil {
		last = cmd
	}
	m, cmd = typeText(m, password)
	if cmd != nil {
		last = cmd
	}
	return m, last
}

func TestLoginPristineState(t *testing.T) {
	m := newTestLoginModel(&loginRecorder{})
	if m.form.Email != (domain.FieldState{}) || m.form.Password != (domain.FieldState{}) {
		t.Errorf("expected pristine fields, got %+v", m.form)
	}
	if m.form.Valid {
		t.Error("expected form to start invalid")
	}
	if m.focus != focusEmail {
		t.Errorf("expected focus on email, got %d", m.focus)
	}
}

func TestLoginMountArmsInitialCheck(t *testing.T) {
	m := newTestLoginModel(&loginRecorder{})
	m, cmd := m.mount()
	if cmd == nil || !m.timer.Pending() {
		t.Fatal("expected mount to arm the validity check")
	}
	m, _ = m.Update(fired(t, cmd))
	if m.form.Valid {
		t.Error("empty form must stay invalid after the initial check")
	}
}

func TestLoginScenarioValidFormEnablesSubmit(t *testing.T) {
	rec := &loginRecorder{}
	m := newTestLoginModel(rec)
	m, cmd := fillForm(m, "a@b.com", "1234567")

	if !m.form.Email.IsValid || !m.form.Password.IsValid {
		t.Fatalf("expected both fields valid, got %+v", m.form)
	}
	if m.form.Valid {
		t.Fatal("form validity must wait for the debounce")
	}

	// Submitting before the check has fired is a no-op.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(rec.calls) != 0 {
		t.Fatal("submit must be disabled before the form is valid")
	}

	m, _ = m.Update(fired(t, cmd))
	if !m.form.Valid {
		t.Fatal("expected form valid after the quiet period")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusSubmit {
		t.Fatalf("expected focus on submit, got %d", m.focus)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(rec.calls) != 1 {
		t.Fatalf("expected one login call, got %d", len(rec.calls))
	}
	want := domain.Credentials{Email: "a@b.com", Password: "1234567"}
	if rec.calls[0] != want {
		t.Errorf("login called with %+v, want %+v", rec.calls[0], want)
	}
}

func TestLoginScenarioInvalidInputsKeepFormInvalid(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"email without at sign", "abc", "1234567"},
		{"password at six chars", "a@b.com", "123456"},
		{"password padded to six", "a@b.com", "  123456  "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &loginRecorder{}
			m := newTestLoginModel(rec)
			m, cmd := m.mount()
			var last tea.Cmd
			m, last = fillForm(m, tc.email, tc.password)
			if last != nil {
				cmd = last
			}
			m, _ = m.Update(fired(t, cmd))
			if m.form.Valid {
				t.Errorf("expected form invalid for email=%q password=%q", tc.email, tc.password)
			}

			m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
			if len(rec.calls) != 0 {
				t.Error("invalid form must not submit")
			}
		})
	}
}

func TestLoginDebounceOnlyLatestFiringCommits(t *testing.T) {
	m := newTestLoginModel(&loginRecorder{})

	m, first := typeText(m, "a@")
	if first == nil {
		t.Fatal("expected email validity flip to arm the timer")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, second := typeText(m, "1234567")
	if second == nil {
		t.Fatal("expected password validity flip to re-arm the timer")
	}

	// Both fields are valid now, so an accepted stale firing would show.
	m, _ = m.Update(fired(t, first))
	if m.form.Valid {
		t.Fatal("superseded firing must not recompute validity")
	}
	m, _ = m.Update(fired(t, second))
	if !m.form.Valid {
		t.Fatal("latest firing should recompute validity")
	}
}

func TestLoginKeystrokesWithoutValidityChangeDoNotRearm(t *testing.T) {
	m := newTestLoginModel(&loginRecorder{})
	m, cmd := typeText(m, "a@")
	if cmd == nil {
		t.Fatal("expected arm on validity flip")
	}
	m, cmd = typeText(m, "example.com")
	if cmd != nil {
		t.Error("typing while validity is unchanged should not re-arm")
	}
	if m.form.Email.Value != "a@example.com" {
		t.Errorf("Email.Value = %q", m.form.Email.Value)
	}
}

func TestLoginBlurReevaluatesLeavingField(t *testing.T) {
	m := newTestLoginModel(&loginRecorder{})
	m.form.Email = domain.FieldState{Value: "a@b", IsValid: false}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !m.form.Email.IsValid || m.form.Email.Value != "a@b" {
		t.Errorf("blur should re-evaluate without changing value, got %+v", m.form.Email)
	}
	if cmd == nil {
		t.Error("validity flip on blur should arm the check")
	}
	if !m.touched[domain.FieldEmail] {
		t.Error("blurred field should be marked touched")
	}
}

func TestLoginFocusCycles(t *testing.T) {
	m := newTestLoginModel(&loginRecorder{})
	order := []loginFocus{focusPassword, focusSubmit, focusEmail}
	for _, want := range order {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		if m.focus != want {
			t.Fatalf("tab: focus=%d, want %d", m.focus, want)
		}
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != focusSubmit {
		t.Errorf("shift+tab from email: focus=%d, want submit", m.focus)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.focus != focusSubmit {
		t.Error("enter on disabled submit should not move focus")
	}
}

func TestLoginEditingKeys(t *testing.T) {
	m := newTestLoginModel(&loginRecorder{})
	m, _ = typeText(m, "abc")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.form.Email.Value != "ab" {
		t.Errorf("after backspace: %q", m.form.Email.Value)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if m.form.Email.Value != "" {
		t.Errorf("after ctrl+u: %q", m.form.Email.Value)
	}
	// Runes typed on the submit button go nowhere.
	m.focus = focusSubmit
	m, _ = typeText(m, "zz")
	if m.form.Email.Value != "" || m.form.Password.Value != "" {
		t.Errorf("typing on submit changed fields: %+v", m.form)
	}
}

func TestLoginBracketedPaste(t *testing.T) {
	m := newTestLoginModel(&loginRecorder{})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a@b.com"), Paste: true})
	if m.form.Email.Value != "a@b.com" || !m.form.Email.IsValid {
		t.Errorf("paste into email: %+v", m.form.Email)
	}
	if cmd == nil {
		t.Error("paste that flips validity should arm the check")
	}
}

func TestLoginClipboardPaste(t *testing.T) {
	orig := readClipboard
	t.Cleanup(func() { readClipboard = orig })
	readClipboard = func() (string, error) { return "1234567\n", nil }

	m := newTestLoginModel(&loginRecorder{})
	m.focus = focusPassword
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if cmd == nil {
		t.Fatal("expected ctrl+v to read the clipboard")
	}
	m, arm := m.Update(cmd())
	if m.form.Password.Value != "1234567" || !m.form.Password.IsValid {
		t.Errorf("clipboard paste: %+v", m.form.Password)
	}
	if arm == nil {
		t.Error("expected paste to arm the check")
	}
}

func TestLoginClipboardPasteIgnoredByOtherForm(t *testing.T) {
	orig := readClipboard
	t.Cleanup(func() { readClipboard = orig })
	readClipboard = func() (string, error) { return "x@y", nil }

	old := newTestLoginModel(&loginRecorder{})
	_, cmd := old.Update(tea.KeyMsg{Type: tea.KeyCtrlV})

	fresh := newTestLoginModel(&loginRecorder{})
	fresh, _ = fresh.Update(cmd())
	if fresh.form.Email.Value != "" {
		t.Errorf("paste from another form instance was applied: %q", fresh.form.Email.Value)
	}
}

func TestLoginClipboardError(t *testing.T) {
	orig := readClipboard
	t.Cleanup(func() { readClipboard = orig })
	readClipboard = func() (string, error) { return "", errors.New("no xclip") }

	m := newTestLoginModel(&loginRecorder{})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	m, _ = m.Update(cmd())
	if m.statusMsg == "" {
		t.Error("expected a status message when the clipboard fails")
	}
	if m.form.Email.Value != "" {
		t.Errorf("failed paste changed the field: %q", m.form.Email.Value)
	}
}

func TestLoginUnmountCancelsPendingCheck(t *testing.T) {
	m := newTestLoginModel(&loginRecorder{})
	m, cmd := fillForm(m, "a@b.com", "1234567")
	m = m.unmount()
	if m.timer.Pending() {
		t.Fatal("expected no pending check after unmount")
	}
	m, _ = m.Update(fired(t, cmd))
	if m.form.Valid {
		t.Error("firing after unmount must not act on the form")
	}
}

func TestLoginSubmitErrorShowsStatus(t *testing.T) {
	rec := &loginRecorder{err: errors.New("disk full")}
	m := newTestLoginModel(rec)
	m, cmd := fillForm(m, "a@b.com", "1234567")
	m, _ = m.Update(fired(t, cmd))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	if len(rec.calls) != 1 {
		t.Fatalf("expected one login call, got %d", len(rec.calls))
	}
	if !strings.Contains(m.View(0), "disk full") {
		t.Errorf("expected error in view, got:\n%s", m.View(0))
	}
}

func TestLoginViewShowsLabelsAndMasksPassword(t *testing.T) {
	m := newTestLoginModel(&loginRecorder{})
	m, _ = fillForm(m, "abc", "secret12")
	view := m.View(0)

	for _, want := range []string{"E-Mail", "Password", "Login", "abc"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "secret12") {
		t.Errorf("password leaked into view:\n%s", view)
	}
	if !strings.Contains(view, "must contain @") {
		t.Errorf("expected invalid email hint, got:\n%s", view)
	}
}

func TestLoginViewHidesHintsUntilTouched(t *testing.T) {
	m := newTestLoginModel(&loginRecorder{})
	view := m.View(0)
	if strings.Contains(view, "must contain @") {
		t.Errorf("pristine form should not show validation errors:\n%s", view)
	}
}
