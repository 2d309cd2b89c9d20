package entity

import (
	"github.com/google/uuid"
)

// Product is one catalog row. Price is free-form text ("24.99", "$15");
// numeric comparisons happen store-side after stripping non-numeric characters.
type Product struct {
	Id          uuid.UUID
	Name        string
	Brand       string
	Price       string
	Description string
	SkinType    string
	HairType    string
	Ingredients string
	Category    string
	Gender      string
}
