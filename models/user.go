package models

// User represents a registered account in the database
type User struct {
	ID        uint   `gorm:"primaryKey;column:user_id"`
	Email     string `gorm:"uniqueIndex;size:255"`
	PwHash    string `json:"-" gorm:"column:pw_hash"`
	FirstName string `gorm:"size:255"`
	LastName  string `gorm:"size:255"`
	Photo     string `gorm:"size:255"` // blob store key, empty when unset
	IsStaff   bool
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "user"
}
