package services

import (
	"context"
	. "lighthouse/internal/models"
	"lighthouse/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
	"golang.org/x/sync/errgroup"
)

// DefaultAverageRating is reported for slots nobody has given a star score, so
// unrated levels sort in the middle rather than last.
const DefaultAverageRating = 3.0

type SlotStatisticsService interface {
	HeartCount(ctx context.Context, slotID int) (int, error)
	ThumbsUp(ctx context.Context, slotID int) (int, error)
	ThumbsDown(ctx context.Context, slotID int) (int, error)
	AverageQuality(ctx context.Context, slotID int) (float64, error)
	Snapshot(ctx context.Context, slotID int) (SlotStatistics, error)
}

type slotStatisticsService struct {
	hearts  repositories.HeartRepository
	ratings repositories.RatingRepository
	log     logger.Logger
}

// NewSlotStatisticsService reads straight from storage on every call. Nothing is
// cached, so a caller always observes its own writes.
func NewSlotStatisticsService(repos repositories.Repository) SlotStatisticsService {
	return &slotStatisticsService{
		hearts:  repos.Heart,
		ratings: repos.Rating,
		log:     logger.New("slotStatisticsService"),
	}
}

func (s *slotStatisticsService) HeartCount(ctx context.Context, slotID int) (int, error) {
	return s.hearts.CountBySlot(ctx, slotID)
}

func (s *slotStatisticsService) ThumbsUp(ctx context.Context, slotID int) (int, error) {
	return s.ratings.CountBySlotAndRating(ctx, slotID, ThumbsUp)
}

func (s *slotStatisticsService) ThumbsDown(ctx context.Context, slotID int) (int, error) {
	return s.ratings.CountBySlotAndRating(ctx, slotID, ThumbsDown)
}

func (s *slotStatisticsService) AverageQuality(ctx context.Context, slotID int) (float64, error) {
	scores, err := s.ratings.GetPositiveLBP1Ratings(ctx, slotID)
	if err != nil {
		return 0, err
	}

	if len(scores) == 0 {
		return DefaultAverageRating, nil
	}

	var sum float64
	for _, score := range scores {
		sum += score
	}

	return sum / float64(len(scores)), nil
}

// Snapshot runs the four reads concurrently. The first failure cancels the rest.
func (s *slotStatisticsService) Snapshot(ctx context.Context, slotID int) (SlotStatistics, error) {
	log := s.log.Function("Snapshot")

	var stats SlotStatistics
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		stats.HeartCount, err = s.HeartCount(groupCtx, slotID)
		return err
	})
	group.Go(func() (err error) {
		stats.ThumbsUp, err = s.ThumbsUp(groupCtx, slotID)
		return err
	})
	group.Go(func() (err error) {
		stats.ThumbsDown, err = s.ThumbsDown(groupCtx, slotID)
		return err
	})
	group.Go(func() (err error) {
		stats.AverageRating, err = s.AverageQuality(groupCtx, slotID)
		return err
	})

	if err := group.Wait(); err != nil {
		return SlotStatistics{}, log.Err("failed to read slot statistics", err, "slotID", slotID)
	}

	return stats, nil
}
