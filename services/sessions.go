// services/sessions.go - In-memory outline sessions with TTL eviction
package services

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"outliner/refscan"
)

// OutlineSession holds one uploaded outline and its detected references.
type OutlineSession struct {
	ID         string                      `json:"id"`
	Filename   string                      `json:"filename"`
	Text       string                      `json:"-"`
	References []refscan.ResolvedReference `json:"references"`
	CreatedAt  time.Time                   `json:"created_at"`
}

// SessionStore keeps sessions in memory. Sessions expire after the
// configured TTL; there is no persistence across restarts.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*OutlineSession
	ttl      time.Duration
	stop     chan struct{}
}

var sessionStore *SessionStore

// InitSessionStore initializes the singleton store and starts the
// eviction loop. SESSION_TTL_MINUTES overrides the one hour default.
func InitSessionStore() {
	ttl := time.Hour
	if val := os.Getenv("SESSION_TTL_MINUTES"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Minute
		}
	}

	sessionStore = &SessionStore{
		sessions: make(map[string]*OutlineSession),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go sessionStore.evictLoop()
}

// GetSessionStore returns the initialized session store.
func GetSessionStore() *SessionStore {
	return sessionStore
}

// Create stores a new session under a fresh UUID and returns it.
func (s *SessionStore) Create(filename, text string, refs []refscan.ResolvedReference) *OutlineSession {
	session := &OutlineSession{
		ID:         uuid.NewString(),
		Filename:   filename,
		Text:       text,
		References: refs,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session
}

// Get returns the session for id, or nil when expired or unknown.
func (s *SessionStore) Get(id string) *OutlineSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok || time.Since(session.CreatedAt) > s.ttl {
		return nil
	}
	return session
}

// Delete removes a session.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Stop ends the eviction loop.
func (s *SessionStore) Stop() {
	close(s.stop)
}

func (s *SessionStore) evictLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stop:
			return
		}
	}
}

func (s *SessionStore) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, session := range s.sessions {
		if now.Sub(session.CreatedAt) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("Evicted %d expired outline sessions", removed)
	}
}
