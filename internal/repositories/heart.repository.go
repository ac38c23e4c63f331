package repositories

import (
	"context"
	"lighthouse/internal/database"
	. "lighthouse/internal/models"

	logger "github.com/Bparsons0904/goLogger"
)

type HeartRepository interface {
	CountBySlot(ctx context.Context, slotID int) (int, error)
	Create(ctx context.Context, heart *Heart) (*Heart, error)
}

type heartRepository struct {
	db  database.DB
	log logger.Logger
}

func NewHeartRepository(db database.DB) HeartRepository {
	return &heartRepository{
		db:  db,
		log: logger.New("heartRepository"),
	}
}

func (r *heartRepository) CountBySlot(ctx context.Context, slotID int) (int, error) {
	log := r.log.Function("CountBySlot")

	var count int64
	if err := r.db.Session(ctx).Model(&Heart{}).Where("slot_id = ?", slotID).Count(&count).Error; err != nil {
		return 0, log.Err("failed to count hearts", err, "slotID", slotID)
	}

	return int(count), nil
}

func (r *heartRepository) Create(ctx context.Context, heart *Heart) (*Heart, error) {
	log := r.log.Function("Create")

	if err := r.db.Session(ctx).Create(heart).Error; err != nil {
		return nil, log.Err("failed to create heart", err, "slotID", heart.SlotID, "userID", heart.UserID)
	}

	return heart, nil
}
