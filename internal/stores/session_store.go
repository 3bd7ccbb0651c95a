package stores

import (
	"context"
	"errors"
	"sync"

	"device-telemetry/internal/models"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyExist  = errors.New("session already exists")
	ErrInvalidSessionLimits = errors.New("max sessions must be positive")
)

// SessionStore keeps report sessions in memory. A session is stored once and read by every
// report view; nothing mutates it afterwards, so readers share the same pointer.
//
// The store is bounded: once maxSessions is reached, Put evicts the oldest session first.
//
//go:generate mockgen -source=session_store.go -destination=./mocks/session_store_mock.go -package=mocks
type SessionStore interface {
	Put(ctx context.Context, session *models.ReportSession) error
	Get(ctx context.Context, sessionID string) (*models.ReportSession, error)
	Delete(ctx context.Context, sessionID string) error
}

type sessionStore struct {
	mu          sync.RWMutex
	sessions    map[string]*models.ReportSession
	order       []string // insertion order, oldest first
	maxSessions int
}

func NewSessionStore(maxSessions int) (SessionStore, error) {
	if maxSessions <= 0 {
		return nil, ErrInvalidSessionLimits
	}
	return &sessionStore{
		sessions:    make(map[string]*models.ReportSession, maxSessions),
		maxSessions: maxSessions,
	}, nil
}

func (s *sessionStore) Put(ctx context.Context, session *models.ReportSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; ok {
		return ErrSessionAlreadyExist
	}
	for len(s.order) >= s.maxSessions {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.sessions, oldest)
		metricSessionsEvictedTotal.Inc()
	}

	s.sessions[session.ID] = session
	s.order = append(s.order, session.ID)
	metricSessionsActive.Set(float64(len(s.sessions)))
	return nil
}

func (s *sessionStore) Get(ctx context.Context, sessionID string) (*models.ReportSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *sessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	for i, id := range s.order {
		if id == sessionID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	metricSessionsActive.Set(float64(len(s.sessions)))
	return nil
}
