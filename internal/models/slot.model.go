package models

import (
	"gorm.io/gorm"
)

// Slot is one published level. Play counters are maintained by the play event
// handlers and the aggregate counts are always derived from them.
type Slot struct {
	SlotID         int          `gorm:"column:slot_id;primaryKey;autoIncrement"          json:"slotId"`
	Name           string       `gorm:"type:text"                                        json:"name"`
	Description    string       `gorm:"type:text"                                        json:"description"`
	IconHash       string       `gorm:"type:text"                                        json:"iconHash"`
	RootLevel      string       `gorm:"type:text"                                        json:"rootLevel"`
	Resources      ResourceList `gorm:"column:resource_collection;type:text"             json:"resources"`
	AuthorLabels   string       `gorm:"type:text"                                        json:"authorLabels"`
	BackgroundHash string       `gorm:"type:text;default:''"                             json:"backgroundHash"`
	LevelType      string       `gorm:"column:level_type;type:text;index"                json:"levelType"`
	GameVersion    GameVersion  `gorm:"column:game_version;type:int;not null;index"      json:"gameVersion"`

	CreatorID  int `gorm:"column:creator_id;type:int;not null;index" json:"creatorId"`
	LocationID int `gorm:"column:location_id;type:int"               json:"locationId"`

	InitiallyLocked bool `gorm:"type:bool;default:false"                          json:"initiallyLocked"`
	SubLevel        bool `gorm:"column:sub_level;type:bool;default:false"         json:"subLevel"`
	Lbp1Only        bool `gorm:"column:lbp1_only;type:bool;default:false"         json:"lbp1Only"`
	MoveRequired    bool `gorm:"column:move_required;type:bool;default:false"     json:"moveRequired"`
	TeamPick        bool `gorm:"column:team_pick;type:bool;default:false;index"   json:"teamPick"`
	Shareable       int  `gorm:"type:int;default:0"                               json:"shareable"`
	MinimumPlayers  int  `gorm:"column:minimum_players;type:int;default:1"        json:"minimumPlayers"`
	MaximumPlayers  int  `gorm:"column:maximum_players;type:int;default:4"        json:"maximumPlayers"`

	FirstUploaded int64 `gorm:"column:first_uploaded;type:bigint;index" json:"firstUploaded"`
	LastUpdated   int64 `gorm:"column:last_updated;type:bigint"         json:"lastUpdated"`

	PlaysLBP1         int `gorm:"column:plays_lbp1;type:int;default:0"          json:"playsLbp1"`
	PlaysLBP1Complete int `gorm:"column:plays_lbp1_complete;type:int;default:0" json:"playsLbp1Complete"`
	PlaysLBP1Unique   int `gorm:"column:plays_lbp1_unique;type:int;default:0"   json:"playsLbp1Unique"`
	PlaysLBP2         int `gorm:"column:plays_lbp2;type:int;default:0"          json:"playsLbp2"`
	PlaysLBP2Complete int `gorm:"column:plays_lbp2_complete;type:int;default:0" json:"playsLbp2Complete"`
	PlaysLBP2Unique   int `gorm:"column:plays_lbp2_unique;type:int;default:0"   json:"playsLbp2Unique"`
	PlaysLBP3         int `gorm:"column:plays_lbp3;type:int;default:0"          json:"playsLbp3"`
	PlaysLBP3Complete int `gorm:"column:plays_lbp3_complete;type:int;default:0" json:"playsLbp3Complete"`
	PlaysLBP3Unique   int `gorm:"column:plays_lbp3_unique;type:int;default:0"   json:"playsLbp3Unique"`
}

func (Slot) TableName() string {
	return "slots"
}

// VariantPlays holds the three counters tracked for one game variant.
type VariantPlays struct {
	Plays    int
	Complete int
	Unique   int
}

func (s *Slot) Plays() int {
	return s.PlaysLBP1 + s.PlaysLBP2 + s.PlaysLBP3
}

func (s *Slot) PlaysUnique() int {
	return s.PlaysLBP1Unique + s.PlaysLBP2Unique + s.PlaysLBP3Unique
}

func (s *Slot) PlaysComplete() int {
	return s.PlaysLBP1Complete + s.PlaysLBP2Complete + s.PlaysLBP3Complete
}

// PlaysFor returns the counters of a single variant. Vita and PSP plays are not
// tracked separately and report zero.
func (s *Slot) PlaysFor(version GameVersion) VariantPlays {
	switch version {
	case LittleBigPlanet1:
		return VariantPlays{Plays: s.PlaysLBP1, Complete: s.PlaysLBP1Complete, Unique: s.PlaysLBP1Unique}
	case LittleBigPlanet2:
		return VariantPlays{Plays: s.PlaysLBP2, Complete: s.PlaysLBP2Complete, Unique: s.PlaysLBP2Unique}
	case LittleBigPlanet3:
		return VariantPlays{Plays: s.PlaysLBP3, Complete: s.PlaysLBP3Complete, Unique: s.PlaysLBP3Unique}
	default:
		return VariantPlays{}
	}
}

func (s *Slot) BeforeSave(tx *gorm.DB) error {
	return s.Resources.Validate()
}
