package mapper

import (
	"encoding/json"

	"beauty-assistant-be/internal/entity"
	"beauty-assistant-be/internal/model"

	"gorm.io/datatypes"
)

type ConversationLogMapper struct{}

func NewConversationLogMapper() *ConversationLogMapper {
	return &ConversationLogMapper{}
}

func (m *ConversationLogMapper) ToEntity(l *model.ConversationLog) *entity.ConversationLog {
	if l == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(l.Metadata) > 0 {
		// Corrupt metadata is tolerated; the row is still useful.
		_ = json.Unmarshal(l.Metadata, &metadata)
	}

	return &entity.ConversationLog{
		Id:        l.Id,
		SessionId: l.SessionId,
		Utterance: l.Utterance,
		Reply:     l.Reply,
		Source:    l.Source,
		Metadata:  metadata,
		CreatedAt: l.CreatedAt,
	}
}

func (m *ConversationLogMapper) ToEntities(models []*model.ConversationLog) []*entity.ConversationLog {
	entities := make([]*entity.ConversationLog, 0, len(models))
	for _, l := range models {
		entities = append(entities, m.ToEntity(l))
	}
	return entities
}

func (m *ConversationLogMapper) ToModel(l *entity.ConversationLog) *model.ConversationLog {
	if l == nil {
		return nil
	}

	var metadata datatypes.JSON
	if l.Metadata != nil {
		if b, err := json.Marshal(l.Metadata); err == nil {
			metadata = b
		}
	}

	return &model.ConversationLog{
		Id:        l.Id,
		SessionId: l.SessionId,
		Utterance: l.Utterance,
		Reply:     l.Reply,
		Source:    l.Source,
		Metadata:  metadata,
		CreatedAt: l.CreatedAt,
	}
}
