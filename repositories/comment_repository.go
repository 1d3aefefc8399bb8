package repositories

import (
	"errors"

	"gorm.io/gorm"

	"blogapi/apperrors"
	"blogapi/models"
)

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func validateComment(content string) error {
	if content == "" {
		return apperrors.Validation("content", "content is required")
	}
	if len(content) > maxTextLength {
		return apperrors.Validation("content", "content must be at most 255 characters")
	}
	return nil
}

func (r *commentRepository) Create(comment *models.Comment) error {
	if err := validateComment(comment.Content); err != nil {
		return err
	}

	var count int64
	if err := r.db.Model(&models.Post{}).Where("post_id = ?", comment.PostID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperrors.ErrNotFound
	}

	return r.db.Create(comment).Error
}

func (r *commentRepository) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Author").Preload("Post").First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(comment *models.Comment) error {
	if err := validateComment(comment.Content); err != nil {
		return err
	}
	return r.db.Save(comment).Error
}

func (r *commentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}

// List returns all comments joined with their post and author
func (r *commentRepository) List() ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").Preload("Post").
		Order("comment_id").
		Find(&comments).Error
	return comments, err
}
