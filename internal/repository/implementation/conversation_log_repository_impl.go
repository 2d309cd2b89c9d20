package implementation

import (
	"context"

	"beauty-assistant-be/internal/entity"
	"beauty-assistant-be/internal/mapper"
	"beauty-assistant-be/internal/model"
	"beauty-assistant-be/internal/repository/contract"
	"beauty-assistant-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ConversationLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationLogMapper
}

func NewConversationLogRepository(db *gorm.DB) contract.ConversationLogRepository {
	return &ConversationLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationLogMapper(),
	}
}

func (r *ConversationLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConversationLogRepositoryImpl) Create(ctx context.Context, log *entity.ConversationLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConversationLogRepositoryImpl) FindAllBySessionId(ctx context.Context, sessionId string) ([]*entity.ConversationLog, error) {
	var models []*model.ConversationLog
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ConversationLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ConversationLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
