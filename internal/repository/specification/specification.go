package specification

import "gorm.io/gorm"

// Specification composes reusable query fragments onto a gorm query.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
