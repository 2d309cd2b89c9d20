package mapper

import (
	"beauty-assistant-be/internal/entity"
	"beauty-assistant-be/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}
	return &entity.Product{
		Id:          p.Id,
		Name:        p.Name,
		Brand:       p.Brand,
		Price:       p.Price,
		Description: p.Description,
		SkinType:    p.SkinType,
		HairType:    p.HairType,
		Ingredients: p.Ingredients,
		Category:    p.Category,
		Gender:      p.Gender,
	}
}

func (m *ProductMapper) ToEntities(models []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, 0, len(models))
	for _, p := range models {
		entities = append(entities, m.ToEntity(p))
	}
	return entities
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}
	return &model.Product{
		Id:          p.Id,
		Name:        p.Name,
		Brand:       p.Brand,
		Price:       p.Price,
		Description: p.Description,
		SkinType:    p.SkinType,
		HairType:    p.HairType,
		Ingredients: p.Ingredients,
		Category:    p.Category,
		Gender:      p.Gender,
	}
}
