package models

// Heart marks a slot as a favourite of one user.
type Heart struct {
	BaseModel
	SlotID int `gorm:"column:slot_id;type:int;not null;uniqueIndex:idx_hearted_levels_slot_user" json:"slotId"`
	UserID int `gorm:"column:user_id;type:int;not null;uniqueIndex:idx_hearted_levels_slot_user" json:"userId"`
}

func (Heart) TableName() string {
	return "hearted_levels"
}
