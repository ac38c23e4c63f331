package models

// User is the minimal creator profile needed to render a slot. Accounts are owned
// by the session service; this catalog only resolves the handle.
type User struct {
	UserID   int    `gorm:"column:user_id;primaryKey;autoIncrement" json:"userId"`
	Username string `gorm:"type:text;not null;uniqueIndex"          json:"username"`
}

func (User) TableName() string {
	return "users"
}
