package mapper

import (
	"beauty-assistant-be/internal/entity"
	"beauty-assistant-be/internal/model"
)

type FaqMapper struct{}

func NewFaqMapper() *FaqMapper {
	return &FaqMapper{}
}

func (m *FaqMapper) ToEntity(f *model.FaqEntry) *entity.FaqEntry {
	if f == nil {
		return nil
	}
	return &entity.FaqEntry{
		Id:       f.Id,
		Question: f.Question,
		Answer:   f.Answer,
	}
}

func (m *FaqMapper) ToModel(f *entity.FaqEntry) *model.FaqEntry {
	if f == nil {
		return nil
	}
	return &model.FaqEntry{
		Id:       f.Id,
		Question: f.Question,
		Answer:   f.Answer,
	}
}
