package filters

import (
	"lighthouse/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamPickFilter_Test(t *testing.T) {
	for _, teamPick := range []bool{true, false} {
		slot := &models.Slot{TeamPick: teamPick}
		assert.Equal(t, teamPick, TeamPickFilter{}.Test(slot))
	}
}

func TestSlotFilters_Test(t *testing.T) {
	slot := &models.Slot{
		SlotID:         7,
		CreatorID:      3,
		GameVersion:    models.LittleBigPlanet2,
		MinimumPlayers: 1,
		MaximumPlayers: 2,
		FirstUploaded:  1000,
		LevelType:      "versus",
		Resources:      models.ResourceList{"aaa", "bbb"},
		SubLevel:       true,
	}

	tests := []struct {
		name     string
		filter   SlotFilter
		expected bool
	}{
		{"game version match", GameVersionFilter{Versions: []models.GameVersion{models.LittleBigPlanet1, models.LittleBigPlanet2}}, true},
		{"game version miss", GameVersionFilter{Versions: []models.GameVersion{models.LittleBigPlanet3}}, false},
		{"game version empty", GameVersionFilter{}, false},
		{"creator match", CreatorFilter{CreatorID: 3}, true},
		{"creator miss", CreatorFilter{CreatorID: 4}, false},
		{"exclude sub levels", ExcludeSubLevelFilter{}, false},
		{"exclude lbp1 only", ExcludeLBP1OnlyFilter{}, true},
		{"exclude move", ExcludeMoveFilter{}, true},
		{"players within range", PlayerCountFilter{Players: 2}, true},
		{"players above range", PlayerCountFilter{Players: 3}, false},
		{"uploaded after inclusive", FirstUploadedFilter{After: 1000}, true},
		{"uploaded before exclusive", FirstUploadedFilter{Before: 1000}, false},
		{"uploaded open range", FirstUploadedFilter{}, true},
		{"level type match", LevelTypeFilter{LevelType: "versus"}, true},
		{"level type miss", LevelTypeFilter{LevelType: "cutscene"}, false},
		{"resource present", ResourceFilter{Hash: "bbb"}, true},
		{"resource absent", ResourceFilter{Hash: "ccc"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Test(slot))
		})
	}
}

func TestAnd_EmptyAcceptsEverything(t *testing.T) {
	composed := And()
	assert.Equal(t, 0, composed.Len())

	for _, slot := range []*models.Slot{{}, {TeamPick: true}, {SubLevel: true, Lbp1Only: true}} {
		assert.True(t, composed.Test(slot))
	}
}

func TestAnd_Conjunction(t *testing.T) {
	composed := And(TeamPickFilter{}, ExcludeSubLevelFilter{})

	tests := []struct {
		name     string
		slot     *models.Slot
		expected bool
	}{
		{"both satisfied", &models.Slot{TeamPick: true}, true},
		{"only team pick", &models.Slot{TeamPick: true, SubLevel: true}, false},
		{"only not sub level", &models.Slot{}, false},
		{"neither", &models.Slot{SubLevel: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, composed.Test(tt.slot))
		})
	}
}

func TestAnd_OrderDoesNotMatter(t *testing.T) {
	a := And(TeamPickFilter{}, CreatorFilter{CreatorID: 1}, ResourceFilter{Hash: "x"})
	b := And(ResourceFilter{Hash: "x"}, CreatorFilter{CreatorID: 1}, TeamPickFilter{})

	slots := []*models.Slot{
		{TeamPick: true, CreatorID: 1, Resources: models.ResourceList{"x"}},
		{TeamPick: true, CreatorID: 2, Resources: models.ResourceList{"x"}},
		{TeamPick: false, CreatorID: 1, Resources: models.ResourceList{"x"}},
		{TeamPick: true, CreatorID: 1, Resources: models.ResourceList{"y"}},
	}

	for _, slot := range slots {
		assert.Equal(t, a.Test(slot), b.Test(slot))
	}
}

func TestAnd_FlattensAndSkipsNil(t *testing.T) {
	inner := And(TeamPickFilter{}, ExcludeMoveFilter{})
	composed := And(inner, nil, CreatorFilter{CreatorID: 2})

	assert.Equal(t, 3, composed.Len())
}

func TestAnd_Split(t *testing.T) {
	composed := And(TeamPickFilter{}, ResourceFilter{Hash: "x"}, CreatorFilter{CreatorID: 1})

	pushdown, residual := composed.Split()

	require.Len(t, pushdown, 2)
	assert.Equal(t, TeamPickFilter{}, pushdown[0])
	assert.Equal(t, CreatorFilter{CreatorID: 1}, pushdown[1])
	assert.Equal(t, 1, residual.Len())
	assert.True(t, residual.Test(&models.Slot{Resources: models.ResourceList{"x"}}))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		param     string
		value     string
		expected  SlotFilter
		expectErr error
	}{
		{name: "team pick enabled", param: ParamTeamPick, value: "true", expected: TeamPickFilter{}},
		{name: "team pick bare", param: ParamTeamPick, value: "", expected: TeamPickFilter{}},
		{name: "team pick disabled", param: ParamTeamPick, value: "false", expected: nil},
		{name: "team pick garbage", param: ParamTeamPick, value: "maybe", expectErr: ErrInvalidFilterValue},
		{
			name:     "game versions",
			param:    ParamGameVersion,
			value:    "lbp1,2",
			expected: GameVersionFilter{Versions: []models.GameVersion{models.LittleBigPlanet1, models.LittleBigPlanet3}},
		},
		{name: "bad game version", param: ParamGameVersion, value: "lbp7", expectErr: ErrInvalidFilterValue},
		{name: "creator", param: ParamCreator, value: "12", expected: CreatorFilter{CreatorID: 12}},
		{name: "creator negative", param: ParamCreator, value: "-1", expectErr: ErrInvalidFilterValue},
		{name: "players", param: ParamPlayers, value: "4", expected: PlayerCountFilter{Players: 4}},
		{name: "uploaded after", param: ParamUploadedAfter, value: "500", expected: FirstUploadedFilter{After: 500}},
		{name: "uploaded before", param: ParamUploadedBefore, value: "900", expected: FirstUploadedFilter{Before: 900}},
		{name: "level type", param: ParamLevelType, value: "versus", expected: LevelTypeFilter{LevelType: "versus"}},
		{name: "resource with delimiter", param: ParamResource, value: "a,b", expectErr: ErrInvalidFilterValue},
		{name: "unknown rule", param: "mostHearted", value: "true", expectErr: ErrUnknownFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := Parse(tt.param, tt.value)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, filter)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, filter)
		})
	}
}

func TestParseAll(t *testing.T) {
	composed, err := ParseAll(map[string]string{
		ParamTeamPick:         "true",
		ParamExcludeSubLevels: "false",
		ParamCreator:          "5",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, composed.Len())
	assert.True(t, composed.Test(&models.Slot{TeamPick: true, CreatorID: 5, SubLevel: true}))

	_, err = ParseAll(map[string]string{"bogus": "1"})
	assert.ErrorIs(t, err, ErrUnknownFilter)
}
