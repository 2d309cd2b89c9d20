package model

import (
	"github.com/google/uuid"
)

// Product mirrors the products table. Price is TEXT by contract with the
// upstream data source; the repository casts it for range predicates.
type Product struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:text;not null"`
	Brand       string    `gorm:"type:text"`
	Price       string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	SkinType    string    `gorm:"type:text"`
	HairType    string    `gorm:"type:text"`
	Ingredients string    `gorm:"type:text"`
	Category    string    `gorm:"type:text;index"`
	Gender      string    `gorm:"type:text"`
}

func (Product) TableName() string {
	return "products"
}
