package repositories

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"gorm.io/gorm"

	"blogapi/apperrors"
	"blogapi/models"
)

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// Issue creates a fresh random token for the user
func (r *tokenRepository) Issue(userID uint) (*models.AuthToken, error) {
	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}

	token := models.AuthToken{
		Key:    hex.EncodeToString(raw),
		UserID: userID,
	}
	if err := r.db.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// FindUser resolves a token key to its owner
func (r *tokenRepository) FindUser(key string) (*models.User, error) {
	var token models.AuthToken
	err := r.db.Preload("User").Where("key = ?", key).First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &token.User, nil
}
