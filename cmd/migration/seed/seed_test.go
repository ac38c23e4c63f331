package seed

import (
	"context"
	"lighthouse/internal/filters"
	"lighthouse/internal/repositories"
	"lighthouse/internal/services"
	"lighthouse/internal/testutil"
	"testing"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repos := repositories.New(db)
	transaction := services.NewTransactionService(db)
	ctx := context.Background()
	log := logger.New("seed_test")

	require.NoError(t, Seed(ctx, transaction, repos, log))
	require.NoError(t, Seed(ctx, transaction, repos, log))

	slots, total, err := repos.Slot.Find(ctx, nil, repositories.Page{})
	require.NoError(t, err)
	assert.Equal(t, len(seedSlots()), total)

	picks, _, err := repos.Slot.Find(ctx, filters.TeamPickFilter{}, repositories.Page{})
	require.NoError(t, err)
	assert.Len(t, picks, 2)

	stats, err := services.NewSlotStatisticsService(repos).Snapshot(ctx, slots[0].SlotID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.HeartCount)
	assert.Equal(t, 2, stats.ThumbsUp)
	assert.Equal(t, 3.0, stats.AverageRating)

	creator, err := repos.User.GetByID(ctx, slots[0].CreatorID)
	require.NoError(t, err)
	require.NotNil(t, creator)
	assert.Equal(t, "mm_pick", creator.Username)
}
