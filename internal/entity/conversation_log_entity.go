package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationLog is one persisted dialog turn. Source names the answering
// branch of the pipeline: greeting, catalog, faq, llm or error.
type ConversationLog struct {
	Id        uuid.UUID
	SessionId string
	Utterance string
	Reply     string
	Source    string
	Metadata  map[string]interface{}
	CreatedAt time.Time
}
