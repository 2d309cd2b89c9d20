package specification

import "gorm.io/gorm"

// Specification is a composable query fragment. Repositories fold a slice of
// specifications over the base query, so callers build conditional filters
// without concatenating SQL.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
