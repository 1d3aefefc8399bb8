package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"blogapi/apperrors"
	"blogapi/dto"
	"blogapi/middleware"
	"blogapi/monitoring"
	"blogapi/repositories"
	"blogapi/storage"
)

// UserHandler handles profiles and the follow graph
type UserHandler struct {
	Users   repositories.UserRepository
	Follows repositories.FollowRepository
	Blobs   storage.BlobStore
}

func NewUserHandler(users repositories.UserRepository, follows repositories.FollowRepository, blobs storage.BlobStore) *UserHandler {
	return &UserHandler{Users: users, Follows: follows, Blobs: blobs}
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, apperrors.Validation("id", "invalid id")
	}
	return uint(id), nil
}

// List returns users matching the optional email / first_name / last_name
// substring filters
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repositories.UserFilter{
		Email:     r.URL.Query().Get("email"),
		FirstName: r.URL.Query().Get("first_name"),
		LastName:  r.URL.Query().Get("last_name"),
	}

	users, err := h.Users.List(filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserListDTOs(users))
}

func (h *UserHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.Users.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}

	followers, err := h.Users.FollowerCount(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserDetailDTO(user, followers))
}

// Me shows the principal's own profile regardless of any id in the path
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal := middleware.Principal(r)

	followers, err := h.Users.FollowerCount(principal.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserDetailDTO(principal, followers))
}

// UpdateMe mutates the principal's own profile; a present password field is
// re-hashed, never stored or echoed in plaintext
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	principal := middleware.Principal(r)

	var requestData struct {
		Email     *string `json:"email"`
		Password  *string `json:"password"`
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		writeError(w, apperrors.Validation("body", "invalid JSON"))
		return
	}

	if requestData.Email != nil {
		if *requestData.Email == "" {
			writeError(w, apperrors.Validation("email", "email is required"))
			return
		}
		principal.Email = *requestData.Email
	}
	if requestData.FirstName != nil {
		principal.FirstName = *requestData.FirstName
	}
	if requestData.LastName != nil {
		principal.LastName = *requestData.LastName
	}
	if requestData.Password != nil {
		if len(*requestData.Password) < minPasswordLength {
			writeError(w, apperrors.Validation("password", "password must be at least 8 characters"))
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*requestData.Password), bcrypt.DefaultCost)
		if err != nil {
			writeError(w, err)
			return
		}
		principal.PwHash = string(hashed)
	}

	if err := h.Users.Update(principal); err != nil {
		writeError(w, err)
		return
	}

	followers, err := h.Users.FollowerCount(principal.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewUserDetailDTO(principal, followers))
}

// DeleteMe removes the account with everything it owns
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	principal := middleware.Principal(r)

	orphanedBlobs, err := h.Users.Delete(principal.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	// The rows are gone; blob cleanup is best-effort.
	for _, key := range orphanedBlobs {
		if err := h.Blobs.Delete(key); err != nil {
			monitoring.BlobFailure.WithLabelValues("delete").Inc()
			logrus.WithError(err).Warn("orphaned blob left behind")
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadPhoto handles POST (replace) and DELETE on the principal's photo
func (h *UserHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	principal := middleware.Principal(r)

	if r.Method == http.MethodDelete {
		// Delete the blob first: a failed delete leaves the reference
		// intact rather than dangling.
		if err := h.Blobs.Delete(principal.Photo); err != nil {
			monitoring.BlobFailure.WithLabelValues("delete").Inc()
			writeError(w, err)
			return
		}
		principal.Photo = ""
		if err := h.Users.Update(principal); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, apperrors.Validation("photo", "photo file is required"))
		return
	}
	defer file.Close()

	key, err := h.Blobs.Store(header.Filename, file)
	if err != nil {
		monitoring.BlobFailure.WithLabelValues("store").Inc()
		writeError(w, err)
		return
	}

	oldKey := principal.Photo
	principal.Photo = key
	if err := h.Users.Update(principal); err != nil {
		h.Blobs.Delete(key)
		writeError(w, err)
		return
	}
	if oldKey != "" {
		if err := h.Blobs.Delete(oldKey); err != nil {
			monitoring.BlobFailure.WithLabelValues("delete").Inc()
			logrus.WithError(err).Warn("replaced photo blob left behind")
		}
	}

	writeJSON(w, http.StatusOK, dto.NewUserPhotoDTO(principal))
}

// FollowChange handles POST (follow) and DELETE (unfollow) on a target user
func (h *UserHandler) FollowChange(w http.ResponseWriter, r *http.Request) {
	principal := middleware.Principal(r)

	targetID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if r.Method == http.MethodPost {
		if err := h.Follows.Follow(principal.ID, targetID); err != nil {
			writeError(w, err)
			return
		}
		monitoring.FollowsCreated.Inc()
		writeJSON(w, http.StatusOK, map[string]string{"detail": "Follow"})
		return
	}

	if err := h.Follows.Unfollow(principal.ID, targetID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Following lists who the given user subscribes to
func (h *UserHandler) Following(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	users, err := h.Follows.Following(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewPublicProfileDTOs(users))
}

// Followers lists who subscribes to the given user
func (h *UserHandler) Followers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	users, err := h.Follows.Followers(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewPublicProfileDTOs(users))
}
