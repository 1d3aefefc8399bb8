package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"blogapi/apperrors"
	"blogapi/models"
	"blogapi/monitoring"
	"blogapi/repositories"
)

const minPasswordLength = 8

// AuthHandler handles registration and token issuing
type AuthHandler struct {
	Users  repositories.UserRepository
	Tokens repositories.TokenRepository
}

func NewAuthHandler(users repositories.UserRepository, tokens repositories.TokenRepository) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		writeError(w, apperrors.Validation("body", "invalid JSON"))
		return
	}

	if requestData.Email == "" {
		writeError(w, apperrors.Validation("email", "email is required"))
		return
	}
	if len(requestData.Password) < minPasswordLength {
		writeError(w, apperrors.Validation("password", "password must be at least 8 characters"))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(requestData.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, err)
		return
	}

	user := models.User{
		Email:     requestData.Email,
		PwHash:    string(hashedPassword),
		FirstName: requestData.FirstName,
		LastName:  requestData.LastName,
	}
	if err := h.Users.Create(&user); err != nil {
		writeError(w, err)
		return
	}

	monitoring.RegisterSuccess.Inc()
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":       user.ID,
		"email":    user.Email,
		"is_staff": user.IsStaff,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		writeError(w, apperrors.Validation("body", "invalid JSON"))
		return
	}

	user, err := h.Users.FindByEmail(requestData.Email)
	if errors.Is(err, apperrors.ErrNotFound) {
		monitoring.LoginFailure.WithLabelValues("unknown email").Inc()
		writeError(w, apperrors.Validation("email", "invalid credentials"))
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PwHash), []byte(requestData.Password)) != nil {
		monitoring.LoginFailure.WithLabelValues("wrong password").Inc()
		writeError(w, apperrors.Validation("password", "invalid credentials"))
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	monitoring.LoginSuccess.Inc()
	writeJSON(w, http.StatusOK, map[string]string{"token": token.Key})
}
