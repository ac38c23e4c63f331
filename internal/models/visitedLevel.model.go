package models

// VisitedLevel holds one user's own play counts on a slot.
type VisitedLevel struct {
	BaseModel
	SlotID    int `gorm:"column:slot_id;type:int;not null;uniqueIndex:idx_visited_levels_slot_user" json:"slotId"`
	UserID    int `gorm:"column:user_id;type:int;not null;uniqueIndex:idx_visited_levels_slot_user" json:"userId"`
	PlaysLBP1 int `gorm:"column:plays_lbp1;type:int;default:0"                                    json:"playsLbp1"`
	PlaysLBP2 int `gorm:"column:plays_lbp2;type:int;default:0"                                    json:"playsLbp2"`
	PlaysLBP3 int `gorm:"column:plays_lbp3;type:int;default:0"                                    json:"playsLbp3"`
}

func (VisitedLevel) TableName() string {
	return "visited_levels"
}
