package models

import "time"

// Follow is a directed edge: the subscriber follows the followee.
// The composite unique index keeps at most one edge per ordered pair.
type Follow struct {
	ID           uint `gorm:"primaryKey"`
	SubscriberID uint `gorm:"column:subscriber_id;index;uniqueIndex:idx_subscriber_followee"`
	FolloweeID   uint `gorm:"column:followee_id;index;uniqueIndex:idx_subscriber_followee"`
	CreatedAt    time.Time
}

// TableName overrides the table name used by GORM
func (Follow) TableName() string {
	return "follow"
}
