package services

import (
	"sync"

	"pawmate_server/models"
)

// swipeSession is the ephemeral cursor of one discovery flow. index points at
// the entry currently on display (already emitted, being judged).
type swipeSession struct {
	entries        []CandidateView
	index          int
	mode           string
	awaitingReason bool
}

// likesSession is the ephemeral cursor over a user's inbound likes
type likesSession struct {
	entries []models.RelationshipRecord
	index   int
}

// userSessions holds the session slots of one user. A user has at most one
// active cursor: starting a discovery flow discards a likes cursor and vice
// versa, last writer wins.
type userSessions struct {
	mu    sync.Mutex
	swipe *swipeSession
	likes *likesSession
}

// SessionStore owns all in-process session state, one lock per user key.
// Nothing here survives a restart; sessions are resumed by starting over.
type SessionStore struct {
	mu    sync.Mutex
	users map[string]*userSessions
}

func NewSessionStore() *SessionStore {
	return &SessionStore{users: make(map[string]*userSessions)}
}

// user returns the session slot for the user, creating it if needed.
// Callers lock the returned struct for the duration of the operation.
func (s *SessionStore) user(userID string) *userSessions {
	s.mu.Lock()
	defer s.mu.Unlock()

	us, ok := s.users[userID]
	if !ok {
		us = &userSessions{}
		s.users[userID] = us
	}
	return us
}
