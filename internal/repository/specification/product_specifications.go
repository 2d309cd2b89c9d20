package specification

import "gorm.io/gorm"

// Product catalog predicates. Each corresponds to one optional field of the
// extracted filter record; unset fields simply contribute no specification.

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

type BySkinType struct {
	SkinType string
}

func (s BySkinType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("skin_type = ?", s.SkinType)
}

type ByHairType struct {
	HairType string
}

func (s ByHairType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("hair_type = ?", s.HairType)
}

// ByGenderOrUnisex matches rows targeted at the requested gender plus rows
// marked unisex, which are valid for everyone.
type ByGenderOrUnisex struct {
	Gender string
}

func (s ByGenderOrUnisex) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("(gender = ? OR gender = 'unisex')", s.Gender)
}

// priceExpr extracts the numeric value from the free-form price column.
// Digits and dots are retained, everything else ("$", currency names,
// whitespace) is stripped before the cast.
const priceExpr = "CAST(REGEXP_REPLACE(price, '[^0-9.]', '', 'g') AS DECIMAL)"

type PriceAtLeast struct {
	Min float64
}

func (s PriceAtLeast) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(priceExpr+" >= ?", s.Min)
}

type PriceAtMost struct {
	Max float64
}

func (s PriceAtMost) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(priceExpr+" <= ?", s.Max)
}

// FaqQuestionContains matches FAQ rows whose stored question contains the
// utterance as a substring.
type FaqQuestionContains struct {
	Utterance string
}

func (s FaqQuestionContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("question LIKE ?", "%"+s.Utterance+"%")
}
