package contract

import (
	"context"

	"beauty-assistant-be/internal/entity"
	"beauty-assistant-be/internal/repository/specification"
	"beauty-assistant-be/pkg/nlp/filter"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	// FindByFilter folds the set fields of the record into predicates and
	// returns at most ten rows.
	FindByFilter(ctx context.Context, rec filter.Record) ([]*entity.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
