package dto

import "blogapi/models"

// UserListDTO is the projection used by user listings
type UserListDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Photo     string `json:"photo,omitempty"`
}

// UserDetailDTO adds the computed follower count
type UserDetailDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Photo     string `json:"photo,omitempty"`
	Followers int64  `json:"followers"`
}

// PublicProfileDTO is the projection used by follower/following listings
type PublicProfileDTO struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Photo string `json:"photo,omitempty"`
}

// UserPhotoDTO carries only the blob reference
type UserPhotoDTO struct {
	ID    uint   `json:"id"`
	Photo string `json:"photo,omitempty"`
}

func NewUserListDTO(u *models.User) UserListDTO {
	return UserListDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Photo:     u.Photo,
	}
}

func NewUserListDTOs(users []models.User) []UserListDTO {
	out := make([]UserListDTO, len(users))
	for i := range users {
		out[i] = NewUserListDTO(&users[i])
	}
	return out
}

func NewUserDetailDTO(u *models.User, followers int64) UserDetailDTO {
	return UserDetailDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Photo:     u.Photo,
		Followers: followers,
	}
}

func NewPublicProfileDTO(u *models.User) PublicProfileDTO {
	return PublicProfileDTO{ID: u.ID, Email: u.Email, Photo: u.Photo}
}

func NewPublicProfileDTOs(users []models.User) []PublicProfileDTO {
	out := make([]PublicProfileDTO, len(users))
	for i := range users {
		out[i] = NewPublicProfileDTO(&users[i])
	}
	return out
}

func NewUserPhotoDTO(u *models.User) UserPhotoDTO {
	return UserPhotoDTO{ID: u.ID, Photo: u.Photo}
}
