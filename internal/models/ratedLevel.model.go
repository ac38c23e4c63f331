package models

const (
	ThumbsUp   = 1
	ThumbsDown = -1
)

// RatedLevel is one user's vote on a slot. Rating carries the up/down signal,
// RatingLBP1 the independent star score, which is only set when positive.
type RatedLevel struct {
	BaseModel
	SlotID     int     `gorm:"column:slot_id;type:int;not null;uniqueIndex:idx_rated_levels_slot_user" json:"slotId"`
	UserID     int     `gorm:"column:user_id;type:int;not null;uniqueIndex:idx_rated_levels_slot_user" json:"userId"`
	Rating     int     `gorm:"column:rating;type:int;not null;default:0"                             json:"rating"`
	RatingLBP1 float64 `gorm:"column:rating_lbp1;type:double precision;not null;default:0"           json:"ratingLbp1"`
}

func (RatedLevel) TableName() string {
	return "rated_levels"
}
