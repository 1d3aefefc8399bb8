package models

import "time"

// Post represents a blog post owned by its author
type Post struct {
	ID        uint   `gorm:"primaryKey;column:post_id"`
	AuthorID  uint   `gorm:"column:author_id;index"`
	Author    User   `gorm:"foreignKey:AuthorID"`
	Title     string `gorm:"size:255"`
	Content   string `gorm:"size:255"`
	Image     string `gorm:"size:255"` // blob store key, empty when unset
	CreatedAt time.Time
	Comments  []Comment `gorm:"foreignKey:PostID"`
}

// TableName overrides the table name used by GORM
func (Post) TableName() string {
	return "post"
}
