package unitofwork

import (
	"context"

	"beauty-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProductRepository() contract.ProductRepository
	FaqRepository() contract.FaqRepository
	ConversationLogRepository() contract.ConversationLogRepository
}
