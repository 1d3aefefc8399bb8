package models

import "time"

// AuthToken is an opaque bearer credential issued at login
type AuthToken struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"uniqueIndex;size:64"`
	UserID    uint   `gorm:"column:user_id;index"`
	User      User   `gorm:"foreignKey:UserID"`
	CreatedAt time.Time
}

// TableName overrides the table name used by GORM
func (AuthToken) TableName() string {
	return "auth_token"
}
