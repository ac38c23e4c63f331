// Package filters holds the predicates used to select slots from the catalog.
//
// Every filter is a pure test over the slot's own fields. Filters that can be
// expressed as a WHERE clause also implement QueryFilter so the catalog
// repository can push them down to the database instead of scanning in memory.
package filters

import (
	"lighthouse/internal/models"

	"gorm.io/gorm"
)

type SlotFilter interface {
	Test(slot *models.Slot) bool
}

// QueryFilter is a SlotFilter with an equivalent SQL form. Apply must select
// exactly the rows for which Test returns true.
type QueryFilter interface {
	SlotFilter
	Apply(db *gorm.DB) *gorm.DB
}
