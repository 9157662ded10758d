package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/naveenspark/loginform/internal/logging"
	"github.com/naveenspark/loginform/internal/store"
	"github.com/naveenspark/loginform/pkg/domain"
)

// Holder is the only writer of the session flag.
type Holder struct {
	store store.Store
	bc    *Broadcaster
	log   logging.Logger

	mu      sync.Mutex
	session domain.Session
}

// NewHolder creates a Holder. Call Initialize before use.
func NewHolder(s store.Store, bc *Broadcaster, log logging.Logger) *Holder {
	return &Holder{
		store: s,
		bc:    bc,
		log:   log.With("component", "session"),
	}
}

// Session returns the current session.
func (h *Holder) Session() domain.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.session
}

// Initialize loads the persisted marker. Read failures and unexpected values
// count as logged out and are only logged.
func (h *Holder) Initialize(ctx context.Context) domain.Session {
	v, ok, err := h.store.Get(ctx, domain.MarkerKey)
	if err != nil {
		h.log.Warn(ctx, "read session marker failed, starting logged out", "err", err)
		v, ok = "", false
	} else if ok && v != domain.MarkerValue {
		h.log.Warn(ctx, "ignoring unexpected session marker", "value", v)
	}
	s := domain.SessionFromMarker(v, ok)
	h.set(s)
	h.log.Info(ctx, "session initialized", "logged_in", s.IsLoggedIn)
	h.publish(s)
	return s
}

// Login marks the user as logged in. Credentials are accepted as-is.
func (h *Holder) Login(ctx context.Context, creds domain.Credentials) error {
	if err := h.store.Set(ctx, domain.MarkerKey, domain.MarkerValue); err != nil {
		return fmt.Errorf("session.Login: %w", err)
	}
	s := domain.Session{IsLoggedIn: true}
	h.set(s)
	h.log.Info(ctx, "logged in", "email", creds.Email)
	h.publish(s)
	return nil
}

// Logout clears the marker and the flag. Logging out twice is harmless.
// The in-memory flag is cleared even when the marker cannot be removed.
func (h *Holder) Logout(ctx context.Context) error {
	err := h.store.Remove(ctx, domain.MarkerKey)
	s := domain.Session{}
	h.set(s)
	h.log.Info(ctx, "logged out")
	h.publish(s)
	if err != nil {
		return fmt.Errorf("session.Logout: %w", err)
	}
	return nil
}

func (h *Holder) set(s domain.Session) {
	h.mu.Lock()
	h.session = s
	h.mu.Unlock()
}

func (h *Holder) publish(s domain.Session) {
	h.bc.Publish(Snapshot{IsLoggedIn: s.IsLoggedIn, OnLogout: h.logoutFromUI})
}

func (h *Holder) logoutFromUI() {
	ctx := context.Background()
	if err := h.Logout(ctx); err != nil {
		h.log.Error(ctx, "logout failed", "err", err)
	}
}
