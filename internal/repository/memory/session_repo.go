package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"profile-editor/internal/domain"
	"profile-editor/pkg/logger"

	"github.com/google/uuid"
)

// session serialises every operation on one editor.
type session struct {
	mu       sync.Mutex
	editor   domain.ProfileEditor
	lastSeen atomic.Int64 // unix nanos
	closed   bool
}

// SessionRepository keeps editors in memory. Idle sessions are evicted
// after ttl and their editors closed.
type SessionRepository struct {
	mu        sync.Mutex
	sessions  map[string]*session
	newEditor func() domain.ProfileEditor
	ttl       time.Duration
	now       func() time.Time
}

func NewSessionRepository(newEditor func() domain.ProfileEditor, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions:  make(map[string]*session),
		newEditor: newEditor,
		ttl:       ttl,
		now:       time.Now,
	}
}

// SetClock overrides the time source; used by tests.
func (r *SessionRepository) SetClock(now func() time.Time) {
	r.mu.Lock()
	r.now = now
	r.mu.Unlock()
}

func (r *SessionRepository) Create(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := uuid.NewString()
	s := &session{editor: r.newEditor()}

	r.mu.Lock()
	s.lastSeen.Store(r.now().UnixNano())
	r.sessions[id] = s
	r.mu.Unlock()
	return id, nil
}

// WithSession runs fn with exclusive access to the session's editor.
func (r *SessionRepository) WithSession(ctx context.Context, id string, fn func(domain.ProfileEditor) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	s, ok := r.sessions[id]
	now := r.now()
	if ok && r.expired(s, now) {
		delete(r.sessions, id)
		r.mu.Unlock()
		closeSession(s)
		return domain.ErrSessionNotFound
	}
	r.mu.Unlock()
	if !ok {
		return domain.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrSessionNotFound
	}
	s.lastSeen.Store(now.UnixNano())
	return fn(s.editor)
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return domain.ErrSessionNotFound
	}
	closeSession(s)
	return nil
}

func (r *SessionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Evict closes and removes every idle session, returning how many went.
func (r *SessionRepository) Evict() int {
	r.mu.Lock()
	now := r.now()
	var stale []*session
	for id, s := range r.sessions {
		if r.expired(s, now) {
			stale = append(stale, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range stale {
		closeSession(s)
	}
	return len(stale)
}

// StartJanitor evicts idle sessions every interval until ctx is done.
func (r *SessionRepository) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := r.Evict(); n > 0 {
					logger.Log.Info("Evicted idle sessions", "count", n)
				}
			}
		}
	}()
}

// CloseAll closes every session; used on shutdown.
func (r *SessionRepository) CloseAll() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[string]*session)
	r.mu.Unlock()
	for _, s := range all {
		closeSession(s)
	}
}

func (r *SessionRepository) expired(s *session, now time.Time) bool {
	if r.ttl <= 0 {
		return false
	}
	return now.Sub(time.Unix(0, s.lastSeen.Load())) > r.ttl
}

func closeSession(s *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.editor.Close()
}
