package memory

import (
	"context"
	"sync"

	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
)

// SessionRepo хранит сессии в памяти процесса. Сессии не переживают перезапуск.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*usecase.Session
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{
		sessions: make(map[string]*usecase.Session),
	}
}

// Create присваивает сессии новый UUID и сохраняет её.
func (r *SessionRepo) Create(_ context.Context, session *usecase.Session) (*usecase.Session, error) {
	session.ID = uuid.NewString()

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	return session, nil
}

func (r *SessionRepo) Get(_ context.Context, id string) (*usecase.Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrSessionNotFound)
	}

	return session, nil
}

func (r *SessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return e.Wrap(whereami.WhereAmI(), e.ErrSessionNotFound)
	}
	delete(r.sessions, id)

	return nil
}

// Len возвращает число активных сессий.
func (r *SessionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
