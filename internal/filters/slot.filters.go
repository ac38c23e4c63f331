package filters

import (
	"lighthouse/internal/models"

	"gorm.io/gorm"
)

// TeamPickFilter keeps the levels featured by the moderation team.
type TeamPickFilter struct{}

func (TeamPickFilter) Test(slot *models.Slot) bool {
	return slot.TeamPick
}

func (TeamPickFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("team_pick = ?", true)
}

type GameVersionFilter struct {
	Versions []models.GameVersion
}

func (f GameVersionFilter) Test(slot *models.Slot) bool {
	for _, version := range f.Versions {
		if slot.GameVersion == version {
			return true
		}
	}
	return false
}

func (f GameVersionFilter) Apply(db *gorm.DB) *gorm.DB {
	if len(f.Versions) == 0 {
		return db.Where("1 = 0")
	}
	return db.Where("game_version IN ?", f.Versions)
}

type CreatorFilter struct {
	CreatorID int
}

func (f CreatorFilter) Test(slot *models.Slot) bool {
	return slot.CreatorID == f.CreatorID
}

func (f CreatorFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("creator_id = ?", f.CreatorID)
}

type ExcludeSubLevelFilter struct{}

func (ExcludeSubLevelFilter) Test(slot *models.Slot) bool {
	return !slot.SubLevel
}

func (ExcludeSubLevelFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sub_level = ?", false)
}

type ExcludeLBP1OnlyFilter struct{}

func (ExcludeLBP1OnlyFilter) Test(slot *models.Slot) bool {
	return !slot.Lbp1Only
}

func (ExcludeLBP1OnlyFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("lbp1_only = ?", false)
}

type ExcludeMoveFilter struct{}

func (ExcludeMoveFilter) Test(slot *models.Slot) bool {
	return !slot.MoveRequired
}

func (ExcludeMoveFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("move_required = ?", false)
}

// PlayerCountFilter keeps levels playable by the given number of players.
type PlayerCountFilter struct {
	Players int
}

func (f PlayerCountFilter) Test(slot *models.Slot) bool {
	return slot.MinimumPlayers <= f.Players && f.Players <= slot.MaximumPlayers
}

func (f PlayerCountFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("minimum_players <= ? AND maximum_players >= ?", f.Players, f.Players)
}

// FirstUploadedFilter keeps levels first published in [After, Before).
// A zero bound is open.
type FirstUploadedFilter struct {
	After  int64
	Before int64
}

func (f FirstUploadedFilter) Test(slot *models.Slot) bool {
	if f.After != 0 && slot.FirstUploaded < f.After {
		return false
	}
	if f.Before != 0 && slot.FirstUploaded >= f.Before {
		return false
	}
	return true
}

func (f FirstUploadedFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.After != 0 {
		db = db.Where("first_uploaded >= ?", f.After)
	}
	if f.Before != 0 {
		db = db.Where("first_uploaded < ?", f.Before)
	}
	return db
}

type LevelTypeFilter struct {
	LevelType string
}

func (f LevelTypeFilter) Test(slot *models.Slot) bool {
	return slot.LevelType == f.LevelType
}

func (f LevelTypeFilter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("level_type = ?", f.LevelType)
}

// ResourceFilter keeps levels that depend on a resource hash. The packed column
// cannot be matched exactly in SQL, so it only runs in memory.
type ResourceFilter struct {
	Hash string
}

func (f ResourceFilter) Test(slot *models.Slot) bool {
	return slot.Resources.Contains(f.Hash)
}
