package contract

import (
	"context"

	"beauty-assistant-be/internal/entity"
	"beauty-assistant-be/internal/repository/specification"
)

type FaqRepository interface {
	Create(ctx context.Context, entry *entity.FaqEntry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FaqEntry, error)
	// LookupAnswer returns the answer of the first FAQ row whose question
	// contains the utterance, or "" when nothing matches.
	LookupAnswer(ctx context.Context, utterance string) (string, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
