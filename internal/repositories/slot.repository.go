package repositories

import (
	"context"
	"errors"
	"lighthouse/internal/database"
	"lighthouse/internal/filters"
	. "lighthouse/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

// Page selects a window of an ordered result. A zero Size returns everything
// from Start onwards.
type Page struct {
	Start int
	Size  int
}

func (p Page) bounds(total int) (int, int) {
	start := max(p.Start, 0)
	if start > total {
		start = total
	}
	end := total
	if p.Size > 0 && start+p.Size < total {
		end = start + p.Size
	}
	return start, end
}

type SlotRepository interface {
	GetByID(ctx context.Context, slotID int) (*Slot, error)
	Find(ctx context.Context, filter filters.SlotFilter, page Page) ([]*Slot, int, error)
	Create(ctx context.Context, slot *Slot) (*Slot, error)
}

type slotRepository struct {
	db  database.DB
	log logger.Logger
}

func NewSlotRepository(db database.DB) SlotRepository {
	return &slotRepository{
		db:  db,
		log: logger.New("slotRepository"),
	}
}

func (r *slotRepository) GetByID(ctx context.Context, slotID int) (*Slot, error) {
	log := r.log.Function("GetByID")

	var slot Slot
	if err := r.db.Session(ctx).First(&slot, "slot_id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get slot by ID", err, "slotID", slotID)
	}

	return &slot, nil
}

// Find returns the slots accepted by filter ordered by id, along with the total
// number of matches before paging. Filters with a SQL form run in the database;
// the rest are applied to the rows it returns.
func (r *slotRepository) Find(
	ctx context.Context,
	filter filters.SlotFilter,
	page Page,
) ([]*Slot, int, error) {
	log := r.log.Function("Find")

	pushdown, residual := filters.And(filter).Split()

	scoped := func() *gorm.DB {
		query := r.db.Session(ctx).Model(&Slot{})
		for _, f := range pushdown {
			query = f.Apply(query)
		}
		return query
	}

	if residual.Len() == 0 {
		var total int64
		if err := scoped().Count(&total).Error; err != nil {
			return nil, 0, log.Err("failed to count slots", err)
		}

		start, end := page.bounds(int(total))
		slots := make([]*Slot, 0, end-start)
		if end > start {
			if err := scoped().Order("slot_id ASC").Offset(start).Limit(end - start).Find(&slots).Error; err != nil {
				return nil, 0, log.Err("failed to find slots", err, "start", start, "size", end-start)
			}
		}

		return slots, int(total), nil
	}

	var candidates []*Slot
	if err := scoped().Order("slot_id ASC").Find(&candidates).Error; err != nil {
		return nil, 0, log.Err("failed to scan slots", err)
	}

	matched := make([]*Slot, 0, len(candidates))
	for _, slot := range candidates {
		if residual.Test(slot) {
			matched = append(matched, slot)
		}
	}

	log.Debug("Applied in-memory filters", "candidates", len(candidates), "matched", len(matched))

	start, end := page.bounds(len(matched))
	return matched[start:end], len(matched), nil
}

func (r *slotRepository) Create(ctx context.Context, slot *Slot) (*Slot, error) {
	log := r.log.Function("Create")

	if err := r.db.Session(ctx).Create(slot).Error; err != nil {
		return nil, log.Err("failed to create slot", err, "name", slot.Name)
	}

	return slot, nil
}
