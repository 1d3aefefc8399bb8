package repositories

import (
	"errors"

	"gorm.io/gorm"

	"blogapi/apperrors"
	"blogapi/models"
)

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Follow creates the subscriber → followee edge. Self-follow and duplicate
// edges are rejected; the composite unique index backs the duplicate check
// against concurrent requests.
func (r *followRepository) Follow(subscriberID, followeeID uint) error {
	if subscriberID == followeeID {
		return apperrors.Validation("user_id", "cannot follow yourself")
	}

	var count int64
	if err := r.db.Model(&models.User{}).Where("user_id = ?", followeeID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.db.Model(&models.Follow{}).
		Where("subscriber_id = ? AND followee_id = ?", subscriberID, followeeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperrors.Validation("user_id", "already following this user")
	}

	follow := models.Follow{SubscriberID: subscriberID, FolloweeID: followeeID}
	if err := r.db.Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Validation("user_id", "already following this user")
		}
		return err
	}
	return nil
}

// Unfollow deletes the edge if present; unfollowing someone not followed
// is a no-op
func (r *followRepository) Unfollow(subscriberID, followeeID uint) error {
	return r.db.
		Where("subscriber_id = ? AND followee_id = ?", subscriberID, followeeID).
		Delete(&models.Follow{}).Error
}

// Following returns the users the given user subscribes to
func (r *followRepository) Following(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Model(&models.User{}).
		Joins("INNER JOIN follow ON follow.followee_id = \"user\".user_id").
		Where("follow.subscriber_id = ?", userID).
		Order("\"user\".user_id").
		Find(&users).Error
	return users, err
}

// Followers returns the users subscribed to the given user
func (r *followRepository) Followers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Model(&models.User{}).
		Joins("INNER JOIN follow ON follow.subscriber_id = \"user\".user_id").
		Where("follow.followee_id = ?", userID).
		Order("\"user\".user_id").
		Find(&users).Error
	return users, err
}
