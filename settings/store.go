// Package settings holds editor preferences for a single client session.
//
// A Store is an explicit value handed to whoever needs it; there is no
// package-level instance. Nothing is persisted.
package settings

import "sync"

const (
	DefaultFontSize    = 14
	DefaultLineNumbers = true
	DefaultMinimap     = true
	DefaultWordWrap    = false
)

// Preferences is a snapshot of every setting.
type Preferences struct {
	CustomAPIKey *string `json:"customApiKey"`
	FontSize     int     `json:"fontSize"`
	LineNumbers  bool    `json:"lineNumbers"`
	Minimap      bool    `json:"minimap"`
	WordWrap     bool    `json:"wordWrap"`
}

// Defaults returns the preferences a new session starts with.
func Defaults() Preferences {
	return Preferences{
		FontSize:    DefaultFontSize,
		LineNumbers: DefaultLineNumbers,
		Minimap:     DefaultMinimap,
		WordWrap:    DefaultWordWrap,
	}
}

// Listener is called with the new snapshot after every change.
type Listener func(Preferences)

type subscription struct {
	id int
	fn Listener
}

// Store holds the current preferences and notifies listeners synchronously,
// in subscription order, after each setter.
type Store struct {
	mu        sync.Mutex
	prefs     Preferences
	listeners []subscription
	nextID    int
}

func New() *Store {
	return NewWith(Defaults())
}

// NewWith starts a store from an explicit snapshot.
func NewWith(initial Preferences) *Store {
	return &Store{prefs: initial}
}

// Snapshot returns a copy of the current preferences.
func (s *Store) Snapshot() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) SetCustomAPIKey(key *string) {
	s.update(func(p *Preferences) { p.CustomAPIKey = key })
}

func (s *Store) SetFontSize(size int) {
	s.update(func(p *Preferences) { p.FontSize = size })
}

func (s *Store) SetLineNumbers(enabled bool) {
	s.update(func(p *Preferences) { p.LineNumbers = enabled })
}

func (s *Store) SetMinimap(enabled bool) {
	s.update(func(p *Preferences) { p.Minimap = enabled })
}

func (s *Store) SetWordWrap(enabled bool) {
	s.update(func(p *Preferences) { p.WordWrap = enabled })
}

// update applies change under the lock and notifies outside it, so a
// listener may read or even write the store.
func (s *Store) update(change func(*Preferences)) {
	s.mu.Lock()
	change(&s.prefs)
	snapshot := s.prefs
	listeners := make([]Listener, len(s.listeners))
	for i, sub := range s.listeners {
		listeners[i] = sub.fn
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
