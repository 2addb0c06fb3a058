package authentication

import (
	"context"
	"sync"
)

type MemRegistry struct {
	sessions map[string]Session
	mutex    sync.RWMutex
}

func NewMemRegistry() *MemRegistry {
	return &MemRegistry{sessions: make(map[string]Session)}
}

func (r *MemRegistry) Put(_ context.Context, s *Session) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.sessions[s.Code] = *s
	return nil
}

func (r *MemRegistry) Get(_ context.Context, code string) (*Session, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	s, ok := r.sessions[code]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

func (r *MemRegistry) Delete(_ context.Context, code string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.sessions[code]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, code)
	return nil
}

func (r *MemRegistry) List(_ context.Context) ([]*Session, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		s := s
		sessions = append(sessions, &s)
	}
	return sessions, nil
}

func (r *MemRegistry) Count(_ context.Context) (int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.sessions), nil
}
