package models

import "strconv"

// Location is the placement of a level on its creator's earth.
type Location struct {
	ID int `gorm:"type:int;primaryKey;autoIncrement" json:"id"`
	X  int `gorm:"type:int;not null"                 json:"x"`
	Y  int `gorm:"type:int;not null"                 json:"y"`
}

func (Location) TableName() string {
	return "locations"
}

func (l *Location) Serialize() string {
	return "<x>" + strconv.Itoa(l.X) + "</x><y>" + strconv.Itoa(l.Y) + "</y>"
}
