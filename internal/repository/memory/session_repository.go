package memory

import (
	"beauty-assistant-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps session contexts in process memory. Entries never
// expire and are never purged: a session lives as long as the process, which
// is the store's contract.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(cache.NoExpiration, 0)
	return &SessionRepository{
		cache: c,
	}
}

// Ensure returns the stored context for the id, creating a fresh empty one on
// first mention. go-cache serializes writers internally, so concurrent first
// mentions settle on last-writer-wins over an empty context, which is safe
// because contexts start identical.
func (r *SessionRepository) Ensure(sessionId string) *entity.SessionContext {
	if existing, found := r.Get(sessionId); found {
		return existing
	}
	session := entity.NewSessionContext()
	r.cache.Set(sessionId, session, cache.NoExpiration)
	return session
}

func (r *SessionRepository) Get(sessionId string) (*entity.SessionContext, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*entity.SessionContext), true
	}
	return nil, false
}

func (r *SessionRepository) Save(sessionId string, session *entity.SessionContext) {
	r.cache.Set(sessionId, session, cache.NoExpiration)
}
