package redis

import (
	"context"
	"encoding/json"
	"log"

	"beauty-assistant-be/internal/entity"

	"github.com/redis/go-redis/v9"
)

// SessionRepository stores session contexts in Redis, JSON-encoded and without
// TTL. It is an optional drop-in for the in-memory store when a deployment
// wants sessions to survive restarts; failures degrade to fresh contexts so
// the dialog pipeline never blocks on Redis.
type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func sessionKey(sessionId string) string {
	return "session:" + sessionId
}

func (r *SessionRepository) Ensure(sessionId string) *entity.SessionContext {
	if existing, found := r.Get(sessionId); found {
		return existing
	}
	session := entity.NewSessionContext()
	r.Save(sessionId, session)
	return session
}

func (r *SessionRepository) Get(sessionId string) (*entity.SessionContext, bool) {
	data, err := r.rdb.Get(context.Background(), sessionKey(sessionId)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[WARN] redis session read failed: %v", err)
		}
		return nil, false
	}

	var session entity.SessionContext
	if err := json.Unmarshal(data, &session); err != nil {
		log.Printf("[WARN] redis session decode failed: %v", err)
		return nil, false
	}
	if session.Context == nil {
		session.Context = make(map[string]interface{})
	}
	return &session, true
}

func (r *SessionRepository) Save(sessionId string, session *entity.SessionContext) {
	data, err := json.Marshal(session)
	if err != nil {
		log.Printf("[WARN] redis session encode failed: %v", err)
		return
	}
	if err := r.rdb.Set(context.Background(), sessionKey(sessionId), data, 0).Err(); err != nil {
		log.Printf("[WARN] redis session write failed: %v", err)
	}
}
