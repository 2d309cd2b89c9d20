package implementation

import (
	"context"
	"errors"

	"beauty-assistant-be/internal/entity"
	"beauty-assistant-be/internal/mapper"
	"beauty-assistant-be/internal/model"
	"beauty-assistant-be/internal/repository/contract"
	"beauty-assistant-be/internal/repository/specification"

	"gorm.io/gorm"
)

type FaqRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FaqMapper
}

func NewFaqRepository(db *gorm.DB) contract.FaqRepository {
	return &FaqRepositoryImpl{
		db:     db,
		mapper: mapper.NewFaqMapper(),
	}
}

func (r *FaqRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FaqRepositoryImpl) Create(ctx context.Context, entry *entity.FaqEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *FaqRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FaqEntry, error) {
	var m model.FaqEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// LookupAnswer matches rows whose stored question contains the whole
// utterance. The needle/haystack direction is inherited from the upstream
// contract and kept as-is.
func (r *FaqRepositoryImpl) LookupAnswer(ctx context.Context, utterance string) (string, error) {
	entry, err := r.FindOne(ctx, specification.FaqQuestionContains{Utterance: utterance})
	if err != nil {
		return "", err
	}
	if entry == nil {
		return "", nil
	}
	return entry.Answer, nil
}

func (r *FaqRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.FaqEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
