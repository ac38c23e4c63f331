package filters

import (
	"lighthouse/internal/models"

	"gorm.io/gorm"
)

// AndFilter is the conjunction of its members. With no members it accepts
// every slot.
type AndFilter struct {
	filters []SlotFilter
}

func And(filters ...SlotFilter) AndFilter {
	flat := make([]SlotFilter, 0, len(filters))
	for _, filter := range filters {
		switch f := filter.(type) {
		case nil:
			continue
		case AndFilter:
			flat = append(flat, f.filters...)
		case *AndFilter:
			flat = append(flat, f.filters...)
		default:
			flat = append(flat, filter)
		}
	}
	return AndFilter{filters: flat}
}

func (f AndFilter) Len() int {
	return len(f.filters)
}

func (f AndFilter) Test(slot *models.Slot) bool {
	for _, filter := range f.filters {
		if !filter.Test(slot) {
			return false
		}
	}
	return true
}

// Split separates the members that can run as SQL from the ones that must be
// evaluated in memory. Order within each group is preserved.
func (f AndFilter) Split() (pushdown []QueryFilter, residual AndFilter) {
	for _, filter := range f.filters {
		if query, ok := filter.(QueryFilter); ok {
			pushdown = append(pushdown, query)
			continue
		}
		residual.filters = append(residual.filters, filter)
	}
	return pushdown, residual
}

// Apply pushes every SQL capable member onto db. Members without a SQL form are
// ignored here; callers must still run the residual half from Split.
func (f AndFilter) Apply(db *gorm.DB) *gorm.DB {
	pushdown, _ := f.Split()
	for _, filter := range pushdown {
		db = filter.Apply(db)
	}
	return db
}
