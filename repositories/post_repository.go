package repositories

import (
	"errors"

	"gorm.io/gorm"

	"blogapi/apperrors"
	"blogapi/models"
)

const maxTextLength = 255

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func validatePost(title, content string) error {
	if title == "" {
		return apperrors.Validation("title", "title is required")
	}
	if len(title) > maxTextLength {
		return apperrors.Validation("title", "title must be at most 255 characters")
	}
	if content == "" {
		return apperrors.Validation("content", "content is required")
	}
	if len(content) > maxTextLength {
		return apperrors.Validation("content", "content must be at most 255 characters")
	}
	return nil
}

func (r *postRepository) Create(post *models.Post) error {
	if err := validatePost(post.Title, post.Content); err != nil {
		return err
	}
	return r.db.Create(post).Error
}

func (r *postRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").Preload("Comments").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindDetail(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comment_id")
		}).
		Preload("Comments.Author").
		First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Update(post *models.Post) error {
	if err := validatePost(post.Title, post.Content); err != nil {
		return err
	}
	return r.db.Save(post).Error
}

// Delete removes the post together with its comments
func (r *postRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

func (r *postRepository) List(filter PostFilter) ([]models.Post, error) {
	query := r.db.Model(&models.Post{}).Preload("Author").Preload("Comments")

	if filter.Title != "" {
		query = query.Where("lower(title) LIKE lower(?)", "%"+filter.Title+"%")
	}
	if filter.Content != "" {
		query = query.Where("lower(content) LIKE lower(?)", "%"+filter.Content+"%")
	}

	var posts []models.Post
	err := query.Distinct().Order("post_id").Find(&posts).Error
	return posts, err
}

func (r *postRepository) Feed(viewerID uint, limit, offset int) ([]models.Post, error) {
	following := r.db.Model(&models.Follow{}).
		Select("followee_id").
		Where("subscriber_id = ?", viewerID)

	var posts []models.Post
	err := r.db.Preload("Author").Preload("Comments").
		Where("author_id IN (?) OR author_id = ?", following, viewerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}
