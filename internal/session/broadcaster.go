// Package session owns the logged-in flag: the Holder mutates and persists
// it, and the Broadcaster shares the latest value with any part of the UI.
package session

import "sync"

// Snapshot is the value every consumer sees.
type Snapshot struct {
	IsLoggedIn bool
	OnLogout   func()
}

// Listener receives each published Snapshot.
type Listener func(Snapshot)

type subscriber struct {
	id int
	fn Listener
}

// Broadcaster holds a single, always-overwritten Snapshot.
type Broadcaster struct {
	mu      sync.Mutex
	current Snapshot
	subs    []subscriber
	nextID  int
}

// NewBroadcaster starts logged out with a no-op logout.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{current: Snapshot{OnLogout: func() {}}}
}

// Current returns the latest Snapshot.
func (b *Broadcaster) Current() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Subscribe registers fn and returns a function that removes it.
func (b *Broadcaster) Subscribe(fn Listener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish replaces the current Snapshot and notifies every listener before
// returning. Listeners may call Current.
func (b *Broadcaster) Publish(s Snapshot) {
	if s.OnLogout == nil {
		s.OnLogout = func() {}
	}
	b.mu.Lock()
	b.current = s
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, sub := range subs {
		sub.fn(s)
	}
}
