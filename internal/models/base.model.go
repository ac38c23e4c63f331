package models

import (
	"time"
)

// BaseModel is embedded by the per-user event rows (hearts, ratings, visits).
// Slots, users and locations carry their own keys because other tables reference them.
type BaseModel struct {
	ID        int       `gorm:"type:int;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime"                    json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"                    json:"updatedAt"`
}
