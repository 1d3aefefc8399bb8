package models

import "time"

// Comment belongs to exactly one post; deleting either the post or
// the author removes it
type Comment struct {
	ID        uint   `gorm:"primaryKey;column:comment_id"`
	AuthorID  uint   `gorm:"column:author_id;index"`
	Author    User   `gorm:"foreignKey:AuthorID"`
	PostID    uint   `gorm:"column:post_id;index"`
	Post      Post   `gorm:"foreignKey:PostID"`
	Content   string `gorm:"size:255"`
	CreatedAt time.Time
}

// TableName overrides the table name used by GORM
func (Comment) TableName() string {
	return "comment"
}
