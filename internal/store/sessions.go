package store

import (
	"errors"
	"sort"
	"sync"

	"interview-prep-backend/internal/models"
)

// ErrNotFound is returned when a session id has no entry in the store.
var ErrNotFound = errors.New("session not found")

// SessionStore holds all sessions for the process lifetime, keyed by id.
// Every access goes through the store lock so an answer submission
// (read, score, append) cannot interleave with another writer on the same
// session. Reads hand out snapshots; callers never alias live state.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*models.Session)}
}

func (s *SessionStore) Insert(session *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

func (s *SessionStore) Get(id string) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return models.Session{}, ErrNotFound
	}
	return snapshot(session), nil
}

// Mutate applies fn to the stored session under the store lock and returns
// the resulting snapshot. fn runs against a working copy that is only
// committed on success, so an error leaves the session untouched.
func (s *SessionStore) Mutate(id string, fn func(*models.Session) error) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return models.Session{}, ErrNotFound
	}
	updated := snapshot(session)
	if err := fn(&updated); err != nil {
		return models.Session{}, err
	}
	*session = updated
	return snapshot(session), nil
}

// All returns snapshots of every session, oldest first.
func (s *SessionStore) All() []models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		result = append(result, snapshot(session))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].StartTime.Equal(result[j].StartTime) {
			return result[i].ID < result[j].ID
		}
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result
}

func snapshot(s *models.Session) models.Session {
	out := *s
	out.Answers = make([]models.Answer, len(s.Answers))
	copy(out.Answers, s.Answers)
	return out
}
