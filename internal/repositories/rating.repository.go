package repositories

import (
	"context"
	"errors"
	"lighthouse/internal/database"
	. "lighthouse/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type RatingRepository interface {
	CountBySlotAndRating(ctx context.Context, slotID int, rating int) (int, error)
	GetPositiveLBP1Ratings(ctx context.Context, slotID int) ([]float64, error)
	GetBySlotAndUser(ctx context.Context, slotID int, userID int) (*RatedLevel, error)
	Create(ctx context.Context, rating *RatedLevel) (*RatedLevel, error)
}

type ratingRepository struct {
	db  database.DB
	log logger.Logger
}

func NewRatingRepository(db database.DB) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: logger.New("ratingRepository"),
	}
}

func (r *ratingRepository) CountBySlotAndRating(ctx context.Context, slotID int, rating int) (int, error) {
	log := r.log.Function("CountBySlotAndRating")

	var count int64
	if err := r.db.Session(ctx).
		Model(&RatedLevel{}).
		Where("slot_id = ? AND rating = ?", slotID, rating).
		Count(&count).Error; err != nil {
		return 0, log.Err("failed to count ratings", err, "slotID", slotID, "rating", rating)
	}

	return int(count), nil
}

// GetPositiveLBP1Ratings returns every star score above zero recorded for the slot.
func (r *ratingRepository) GetPositiveLBP1Ratings(ctx context.Context, slotID int) ([]float64, error) {
	log := r.log.Function("GetPositiveLBP1Ratings")

	ratings := []float64{}
	if err := r.db.Session(ctx).
		Model(&RatedLevel{}).
		Where("slot_id = ? AND rating_lbp1 > 0", slotID).
		Pluck("rating_lbp1", &ratings).Error; err != nil {
		return nil, log.Err("failed to get lbp1 ratings", err, "slotID", slotID)
	}

	return ratings, nil
}

func (r *ratingRepository) GetBySlotAndUser(ctx context.Context, slotID int, userID int) (*RatedLevel, error) {
	log := r.log.Function("GetBySlotAndUser")

	var rating RatedLevel
	if err := r.db.Session(ctx).
		Where("slot_id = ? AND user_id = ?", slotID, userID).
		First(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get rating", err, "slotID", slotID, "userID", userID)
	}

	return &rating, nil
}

func (r *ratingRepository) Create(ctx context.Context, rating *RatedLevel) (*RatedLevel, error) {
	log := r.log.Function("Create")

	if err := r.db.Session(ctx).Create(rating).Error; err != nil {
		return nil, log.Err("failed to create rating", err, "slotID", rating.SlotID, "userID", rating.UserID)
	}

	return rating, nil
}
