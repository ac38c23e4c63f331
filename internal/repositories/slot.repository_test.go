package repositories_test

import (
	"context"
	"lighthouse/internal/filters"
	"lighthouse/internal/models"
	"lighthouse/internal/repositories"
	"lighthouse/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSlots(t *testing.T, repo repositories.SlotRepository) []*models.Slot {
	t.Helper()
	ctx := context.Background()

	slots := []*models.Slot{
		{Name: "Intro", CreatorID: 1, GameVersion: models.LittleBigPlanet1, TeamPick: true, MinimumPlayers: 1, MaximumPlayers: 4, FirstUploaded: 100, LevelType: "", Resources: models.ResourceList{"aa", "bb"}},
		{Name: "Versus", CreatorID: 1, GameVersion: models.LittleBigPlanet2, MinimumPlayers: 2, MaximumPlayers: 4, FirstUploaded: 200, LevelType: "versus", Resources: models.ResourceList{"bb"}},
		{Name: "Sub", CreatorID: 2, GameVersion: models.LittleBigPlanet2, SubLevel: true, TeamPick: true, MinimumPlayers: 1, MaximumPlayers: 1, FirstUploaded: 300, Resources: models.ResourceList{"cc"}},
		{Name: "Move", CreatorID: 3, GameVersion: models.LittleBigPlanet3, MoveRequired: true, MinimumPlayers: 1, MaximumPlayers: 2, FirstUploaded: 400, Resources: models.ResourceList{"bb", "dd"}},
		{Name: "Classic", CreatorID: 2, GameVersion: models.LittleBigPlanet1, Lbp1Only: true, TeamPick: true, MinimumPlayers: 1, MaximumPlayers: 4, FirstUploaded: 500, Resources: models.ResourceList{}},
	}

	for _, slot := range slots {
		_, err := repo.Create(ctx, slot)
		require.NoError(t, err)
	}

	return slots
}

func slotIDs(slots []*models.Slot) []int {
	ids := make([]int, 0, len(slots))
	for _, slot := range slots {
		ids = append(ids, slot.SlotID)
	}
	return ids
}

func TestSlotRepository_FindWithoutFiltersReturnsEverything(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := repositories.NewSlotRepository(db)
	seeded := seedSlots(t, repo)

	slots, total, err := repo.Find(context.Background(), filters.And(), repositories.Page{})

	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, slots, 5)
	assert.Equal(t, slotIDs(seeded), slotIDs(slots))
}

func TestSlotRepository_FindMatchesInMemoryEvaluation(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := repositories.NewSlotRepository(db)
	seeded := seedSlots(t, repo)

	tests := []struct {
		name   string
		filter filters.SlotFilter
	}{
		{"team pick", filters.TeamPickFilter{}},
		{"team pick and not sub level", filters.And(filters.TeamPickFilter{}, filters.ExcludeSubLevelFilter{})},
		{"game versions", filters.GameVersionFilter{Versions: []models.GameVersion{models.LittleBigPlanet2, models.LittleBigPlanet3}}},
		{"creator", filters.CreatorFilter{CreatorID: 2}},
		{"exclude lbp1 only", filters.ExcludeLBP1OnlyFilter{}},
		{"exclude move", filters.ExcludeMoveFilter{}},
		{"two players", filters.PlayerCountFilter{Players: 2}},
		{"uploaded window", filters.FirstUploadedFilter{After: 200, Before: 500}},
		{"level type", filters.LevelTypeFilter{LevelType: "versus"}},
		{"resource only", filters.ResourceFilter{Hash: "bb"}},
		{"resource and creator", filters.And(filters.ResourceFilter{Hash: "bb"}, filters.CreatorFilter{CreatorID: 1})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var expected []*models.Slot
			for _, slot := range seeded {
				if tt.filter.Test(slot) {
					expected = append(expected, slot)
				}
			}

			slots, total, err := repo.Find(context.Background(), tt.filter, repositories.Page{})

			require.NoError(t, err)
			assert.Equal(t, len(expected), total)
			assert.Equal(t, slotIDs(expected), slotIDs(slots))
		})
	}
}

func TestSlotRepository_FindPaging(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := repositories.NewSlotRepository(db)
	seeded := seedSlots(t, repo)
	ctx := context.Background()

	t.Run("pushdown only", func(t *testing.T) {
		slots, total, err := repo.Find(ctx, nil, repositories.Page{Start: 1, Size: 2})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Equal(t, []int{seeded[1].SlotID, seeded[2].SlotID}, slotIDs(slots))
	})

	t.Run("with residual filter", func(t *testing.T) {
		slots, total, err := repo.Find(ctx, filters.ResourceFilter{Hash: "bb"}, repositories.Page{Start: 1, Size: 1})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Equal(t, []int{seeded[1].SlotID}, slotIDs(slots))
	})

	t.Run("start past the end", func(t *testing.T) {
		slots, total, err := repo.Find(ctx, nil, repositories.Page{Start: 10, Size: 5})
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		assert.Empty(t, slots)
	})
}

func TestSlotRepository_GetByID(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := repositories.NewSlotRepository(db)
	seeded := seedSlots(t, repo)
	ctx := context.Background()

	slot, err := repo.GetByID(ctx, seeded[0].SlotID)
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, "Intro", slot.Name)
	assert.Equal(t, models.ResourceList{"aa", "bb"}, slot.Resources)
	assert.True(t, slot.TeamPick)

	empty, err := repo.GetByID(ctx, seeded[4].SlotID)
	require.NoError(t, err)
	assert.Empty(t, empty.Resources)

	missing, err := repo.GetByID(ctx, 9999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSlotRepository_CreateRejectsPackedResource(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := repositories.NewSlotRepository(db)

	_, err := repo.Create(context.Background(), &models.Slot{
		Name:      "Broken",
		Resources: models.ResourceList{"a,b"},
	})

	assert.ErrorIs(t, err, models.ErrResourceDelimiter)
}
