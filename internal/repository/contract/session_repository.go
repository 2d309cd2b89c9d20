package contract

import "beauty-assistant-be/internal/entity"

// SessionRepository holds per-session dialog context for the process
// lifetime. Ensure is idempotent: a known id returns the stored context, an
// unknown id creates and stores a fresh empty one.
type SessionRepository interface {
	Ensure(sessionId string) *entity.SessionContext
	Get(sessionId string) (*entity.SessionContext, bool)
	Save(sessionId string, session *entity.SessionContext)
}
