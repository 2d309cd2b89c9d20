package contract

import (
	"context"

	"beauty-assistant-be/internal/entity"
	"beauty-assistant-be/internal/repository/specification"
)

type ConversationLogRepository interface {
	Create(ctx context.Context, log *entity.ConversationLog) error
	FindAllBySessionId(ctx context.Context, sessionId string) ([]*entity.ConversationLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
