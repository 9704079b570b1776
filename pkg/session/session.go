// Package session demonstrates two shapes of the process-wide instance
// holder. Shared is the single-access-point variant: one Session for the
// whole process, created at most once, reachable without holding a
// reference. Deps is the injected-locator variant: a composition root that
// owns one Session and shares it by handing out its own reference, keeping
// construction substitutable for tests.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is a long-lived, session-like value. Immutable once created;
// safe for concurrent readers.
type Session struct {
	id        string
	label     string
	startedAt time.Time
}

// New constructs a Session with a fresh ID. Ordinary construction exists
// for the injected-locator variant and for tests; the process-wide instance
// is reached through Shared.
func New(label string) *Session {
	return &Session{
		id:        newSessionID(),
		label:     label,
		startedAt: time.Now().UTC(),
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Label returns the label given at construction.
func (s *Session) Label() string { return s.label }

// StartedAt returns the session's creation time in UTC.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// shared guards first-instance creation: concurrent first callers race into
// the once, exactly one construction wins, and every caller observes the
// same pointer. There is no path back to the uninitialized state.
var shared = sync.OnceValue(func() *Session {
	return New("shared")
})

// Shared returns the process-wide Session, creating it on first access.
func Shared() *Session {
	return shared()
}

// Deps is a dependencies root owning exactly one Session, built when the
// root is built. Callers that want the shared session receive the root (or
// the session from it) as an argument; nothing about the Session type stops
// other code from constructing its own.
type Deps struct {
	session *Session
}

// NewDeps builds a root with a fresh Session.
func NewDeps() *Deps {
	return NewDepsWith(New("deps-root"))
}

// NewDepsWith builds a root around a caller-supplied Session. This is the
// substitution seam for tests. A nil session is a programmer error and
// panics.
func NewDepsWith(s *Session) *Deps {
	if s == nil {
		panic("session: nil session for deps root")
	}
	return &Deps{session: s}
}

// Session returns the root's one Session. Every call returns the same
// instance for the lifetime of the root.
func (d *Deps) Session() *Session {
	return d.session
}

// newSessionID generates a session ID as a UUID v7.
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
