package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"monastery-guide/internal/domain"
)

const defaultSessionTTL = 2 * time.Hour

// Session is the append-only turn log of one conversation. Turns are never
// removed; the whole session is dropped when it expires.
type Session struct {
	id  string
	now func() time.Time

	mu         sync.RWMutex
	turns      []domain.Turn
	lastActive time.Time

	// turn serializes pipeline runs within the session.
	turn chan struct{}
}

func newSession(id string, now func() time.Time) *Session {
	return &Session{id: id, now: now, lastActive: now(), turn: make(chan struct{}, 1)}
}

func (s *Session) ID() string {
	return s.id
}

// Append adds a turn at the end of the log.
func (s *Session) Append(t domain.Turn) {
	s.mu.Lock()
	s.turns = append(s.turns, t)
	s.lastActive = s.now()
	s.mu.Unlock()
}

// Turns returns a copy of the log in chronological order.
func (s *Session) Turns() []domain.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}

// Lock waits until no other pipeline run holds the session. It returns the
// context error if ctx ends first.
func (s *Session) Lock(ctx context.Context) error {
	select {
	case s.turn <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) Unlock() {
	<-s.turn
}

func (s *Session) idleSince() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActive
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActive = s.now()
	s.mu.Unlock()
}

// Sessions holds every live conversation in memory. Nothing is persisted.
type Sessions struct {
	ttl   time.Duration
	now   func() time.Time
	newID func() string

	mu       sync.RWMutex
	sessions map[string]*Session
}

type SessionsOption func(*Sessions)

// WithTTL sets how long an idle session survives a Sweep.
func WithTTL(ttl time.Duration) SessionsOption {
	return func(s *Sessions) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) SessionsOption {
	return func(s *Sessions) {
		s.now = now
	}
}

func NewSessions(opts ...SessionsOption) *Sessions {
	s := &Sessions{
		ttl:      defaultSessionTTL,
		now:      time.Now,
		newID:    uuid.NewString,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts an empty session with a fresh id.
func (r *Sessions) Create() *Session {
	sess := newSession(r.newID(), r.now)
	r.mu.Lock()
	r.sessions[sess.id] = sess
	r.mu.Unlock()
	return sess
}

// Get returns a live session and marks it active.
func (r *Sessions) Get(id string) (*Session, bool) {
	r.mu.RLock()
	sess, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		sess.touch()
	}
	return sess, ok
}

// End drops a session and its turns.
func (r *Sessions) End(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *Sessions) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (r *Sessions) Sweep() int {
	cutoff := r.now().Add(-r.ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, sess := range r.sessions {
		if sess.idleSince().Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (r *Sessions) RunSweeper(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
