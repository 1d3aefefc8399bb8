package repositories

import (
	"errors"

	"gorm.io/gorm"

	"blogapi/apperrors"
	"blogapi/models"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	taken, err := r.EmailTaken(user.Email, 0)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.Validation("email", "email already registered")
	}
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailTaken checks email uniqueness, ignoring the row excludeID so a user
// can update their own profile without tripping over themselves
func (r *userRepository) EmailTaken(email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("email = ? AND user_id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Update(user *models.User) error {
	taken, err := r.EmailTaken(user.Email, user.ID)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.Validation("email", "email already registered")
	}
	return r.db.Save(user).Error
}

// Delete removes the user and everything they own in one transaction.
// Cascades run here rather than relying on FK triggers so the lifecycle
// rule is visible and testable.
func (r *userRepository) Delete(id uint) ([]string, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var orphanedBlobs []string
	if user.Photo != "" {
		orphanedBlobs = append(orphanedBlobs, user.Photo)
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		var posts []models.Post
		if err := tx.Where("author_id = ?", id).Find(&posts).Error; err != nil {
			return err
		}
		for _, post := range posts {
			if post.Image != "" {
				orphanedBlobs = append(orphanedBlobs, post.Image)
			}
			if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subscriber_id = ? OR followee_id = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.AuthToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return orphanedBlobs, nil
}

func (r *userRepository) List(filter UserFilter) ([]models.User, error) {
	query := r.db.Model(&models.User{})

	if filter.Email != "" {
		query = query.Where("lower(email) LIKE lower(?)", "%"+filter.Email+"%")
	}
	if filter.FirstName != "" {
		query = query.Where("lower(first_name) LIKE lower(?)", "%"+filter.FirstName+"%")
	}
	if filter.LastName != "" {
		query = query.Where("lower(last_name) LIKE lower(?)", "%"+filter.LastName+"%")
	}

	var users []models.User
	err := query.Distinct().Order("user_id").Find(&users).Error
	return users, err
}

func (r *userRepository) FollowerCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("followee_id = ?", userID).
		Count(&count).Error
	return count, err
}
