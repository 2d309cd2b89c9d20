package implementation

import (
	"context"

	"beauty-assistant-be/internal/entity"
	"beauty-assistant-be/internal/mapper"
	"beauty-assistant-be/internal/model"
	"beauty-assistant-be/internal/repository/contract"
	"beauty-assistant-be/internal/repository/specification"
	"beauty-assistant-be/pkg/nlp/filter"

	"gorm.io/gorm"
)

// catalogResultLimit caps every catalog lookup, matching the upstream
// contract of at most ten rows per query.
const catalogResultLimit = 10

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

func (r *ProductRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	m := r.mapper.ToModel(product)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*product = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	var models []*model.Product
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// FindByFilter folds the set fields of the record into specifications. Unset
// fields contribute nothing, so an empty record lists the first ten rows.
func (r *ProductRepositoryImpl) FindByFilter(ctx context.Context, rec filter.Record) ([]*entity.Product, error) {
	specs := make([]specification.Specification, 0, 6)

	if rec.Category != "" {
		specs = append(specs, specification.ByCategory{Category: rec.Category})
	}
	if rec.SkinType != "" {
		specs = append(specs, specification.BySkinType{SkinType: string(rec.SkinType)})
	}
	if rec.HairType != "" {
		specs = append(specs, specification.ByHairType{HairType: string(rec.HairType)})
	}
	if rec.Gender != filter.GenderUnset {
		specs = append(specs, specification.ByGenderOrUnisex{Gender: string(rec.Gender)})
	}
	if rec.PriceMin != nil {
		specs = append(specs, specification.PriceAtLeast{Min: *rec.PriceMin})
	}
	if rec.PriceMax != nil {
		specs = append(specs, specification.PriceAtMost{Max: *rec.PriceMax})
	}
	// Name order keeps the ten-row window stable across identical queries.
	specs = append(specs, specification.OrderBy{Field: "name"})
	specs = append(specs, specification.Limit{N: catalogResultLimit})

	return r.FindAll(ctx, specs...)
}

func (r *ProductRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Product{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
