// Package selection models the short-lived interactive flow that asks the
// invoking user to pick one catalog entry. A session is single-use: it
// resolves to exactly one of Chosen, TimedOut, or Cancelled and cannot be
// reopened.
package selection

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Outcome is the terminal state of a session.
type Outcome int

const (
	// Chosen means the inviting user picked a catalog entry in time.
	Chosen Outcome = iota
	// TimedOut means the wait duration elapsed with no selection.
	TimedOut
	// Cancelled means the hosting flow was torn down before a selection.
	Cancelled
)

// Result carries the terminal state and, for Chosen, the selected value.
type Result struct {
	Outcome Outcome
	Value   string
}

// Session is one pending product selection. The component custom ID ties
// Discord select-menu interactions back to the waiting goroutine.
type Session struct {
	customID string
	userID   string

	once sync.Once
	done chan Result
}

func newSession(userID string) *Session {
	return &Session{
		customID: "vouch-product:" + uuid.NewString(),
		userID:   userID,
		done:     make(chan Result, 1),
	}
}

// CustomID returns the unique component identifier for this session.
func (s *Session) CustomID() string { return s.customID }

// UserID returns the inviting user; only their selection resolves the session.
func (s *Session) UserID() string { return s.userID }

// Resolve completes the session with the chosen value. Only the first
// terminal transition wins; Resolve reports whether it was accepted.
func (s *Session) Resolve(value string) bool {
	accepted := false
	s.once.Do(func() {
		s.done <- Result{Outcome: Chosen, Value: value}
		accepted = true
	})
	return accepted
}

// Cancel completes the session without a selection.
func (s *Session) Cancel() {
	s.once.Do(func() {
		s.done <- Result{Outcome: Cancelled}
	})
}

// Wait blocks the calling goroutine until the session reaches a terminal
// state or timeout elapses. Context cancellation counts as Cancelled.
// Discord handlers run on their own goroutines, so blocking here suspends
// only this invocation; the gateway event loop keeps servicing other work.
func (s *Session) Wait(ctx context.Context, timeout time.Duration) Result {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r := <-s.done:
		return r
	case <-timer.C:
		// seal the session so a late Resolve is rejected
		s.once.Do(func() {})
		return Result{Outcome: TimedOut}
	case <-ctx.Done():
		s.once.Do(func() {})
		return Result{Outcome: Cancelled}
	}
}

// Registry tracks open sessions by component custom ID so the global
// interaction handler can route select-menu events to the right waiter.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Open creates and registers a new session for userID.
func (r *Registry) Open(userID string) *Session {
	s := newSession(userID)
	r.mu.Lock()
	r.sessions[s.customID] = s
	r.mu.Unlock()
	return s
}

// Lookup returns the open session for customID, if any.
func (r *Registry) Lookup(customID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[customID]
	return s, ok
}

// Close deregisters the session. Callers defer this right after Open.
func (r *Registry) Close(s *Session) {
	r.mu.Lock()
	delete(r.sessions, s.customID)
	r.mu.Unlock()
}
