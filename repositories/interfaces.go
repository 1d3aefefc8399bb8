package repositories

import "blogapi/models"

// UserFilter holds optional case-insensitive substring matchers.
// Provided fields are AND-combined.
type UserFilter struct {
	Email     string
	FirstName string
	LastName  string
}

// PostFilter holds optional case-insensitive substring matchers.
type PostFilter struct {
	Title   string
	Content string
}

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	EmailTaken(email string, excludeID uint) (bool, error)
	Update(user *models.User) error
	// Delete removes the user with all owned posts, comments, follow edges
	// and tokens, and returns the blob keys that no longer have owners.
	Delete(id uint) ([]string, error)
	List(filter UserFilter) ([]models.User, error)
	FollowerCount(userID uint) (int64, error)
}

type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id uint) (*models.Post, error)
	// FindDetail loads the post with its author and all comments
	// (each with its author) in insertion order.
	FindDetail(id uint) (*models.Post, error)
	Update(post *models.Post) error
	// Delete removes the post and its comments.
	Delete(id uint) error
	List(filter PostFilter) ([]models.Post, error)
	// Feed returns posts authored by the viewer or anyone the viewer
	// follows, newest first.
	Feed(viewerID uint, limit, offset int) ([]models.Post, error)
}

type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByID(id uint) (*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id uint) error
	List() ([]models.Comment, error)
}

type FollowRepository interface {
	Follow(subscriberID, followeeID uint) error
	Unfollow(subscriberID, followeeID uint) error
	Following(userID uint) ([]models.User, error)
	Followers(userID uint) ([]models.User, error)
}

type TokenRepository interface {
	Issue(userID uint) (*models.AuthToken, error)
	FindUser(key string) (*models.User, error)
}
