package repositories

import (
	"context"
	"errors"
	"lighthouse/internal/database"
	. "lighthouse/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type VisitRepository interface {
	GetBySlotAndUser(ctx context.Context, slotID int, userID int) (*VisitedLevel, error)
	Create(ctx context.Context, visit *VisitedLevel) (*VisitedLevel, error)
}

type visitRepository struct {
	db  database.DB
	log logger.Logger
}

func NewVisitRepository(db database.DB) VisitRepository {
	return &visitRepository{
		db:  db,
		log: logger.New("visitRepository"),
	}
}

func (r *visitRepository) GetBySlotAndUser(ctx context.Context, slotID int, userID int) (*VisitedLevel, error) {
	log := r.log.Function("GetBySlotAndUser")

	var visit VisitedLevel
	if err := r.db.Session(ctx).
		Where("slot_id = ? AND user_id = ?", slotID, userID).
		First(&visit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get visit", err, "slotID", slotID, "userID", userID)
	}

	return &visit, nil
}

func (r *visitRepository) Create(ctx context.Context, visit *VisitedLevel) (*VisitedLevel, error) {
	log := r.log.Function("Create")

	if err := r.db.Session(ctx).Create(visit).Error; err != nil {
		return nil, log.Err("failed to create visit", err, "slotID", visit.SlotID, "userID", visit.UserID)
	}

	return visit, nil
}
