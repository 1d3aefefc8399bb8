package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"blogapi/apperrors"
	"blogapi/dto"
	"blogapi/middleware"
	"blogapi/models"
	"blogapi/monitoring"
	"blogapi/repositories"
	"blogapi/storage"
)

// PostHandler handles post CRUD and image actions
type PostHandler struct {
	Posts repositories.PostRepository
	Blobs storage.BlobStore
}

func NewPostHandler(posts repositories.PostRepository, blobs storage.BlobStore) *PostHandler {
	return &PostHandler{Posts: posts, Blobs: blobs}
}

// List returns posts matching the optional title / content substring filters
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repositories.PostFilter{
		Title:   r.URL.Query().Get("title"),
		Content: r.URL.Query().Get("content"),
	}

	posts, err := h.Posts.List(filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewPostListDTOs(posts))
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal := middleware.Principal(r)

	var requestData struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		writeError(w, apperrors.Validation("body", "invalid JSON"))
		return
	}

	post := models.Post{
		AuthorID: principal.ID,
		Title:    requestData.Title,
		Content:  requestData.Content,
	}
	if err := h.Posts.Create(&post); err != nil {
		writeError(w, err)
		return
	}

	monitoring.PostsCreated.Inc()
	post.Author = *principal
	writeJSON(w, http.StatusCreated, dto.NewPostListDTO(&post))
}

func (h *PostHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	post, err := h.Posts.FindDetail(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewPostDetailDTO(post))
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	post, err := h.ownedPost(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var requestData struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		writeError(w, apperrors.Validation("body", "invalid JSON"))
		return
	}

	if requestData.Title != nil {
		post.Title = *requestData.Title
	}
	if requestData.Content != nil {
		post.Content = *requestData.Content
	}

	if err := h.Posts.Update(post); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewPostListDTO(post))
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	post, err := h.ownedPost(r)
	if err != nil {
		writeError(w, err)
		return
	}

	// Blob first: if the blob delete fails the post row survives with its
	// reference intact.
	if err := h.Blobs.Delete(post.Image); err != nil {
		monitoring.BlobFailure.WithLabelValues("delete").Inc()
		writeError(w, err)
		return
	}

	if err := h.Posts.Delete(post.ID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadImage handles POST (replace) and DELETE on a post's image; only the
// author may touch it
func (h *PostHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	post, err := h.ownedPost(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if r.Method == http.MethodDelete {
		if err := h.Blobs.Delete(post.Image); err != nil {
			monitoring.BlobFailure.WithLabelValues("delete").Inc()
			writeError(w, err)
			return
		}
		post.Image = ""
		if err := h.Posts.Update(post); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, apperrors.Validation("image", "image file is required"))
		return
	}
	defer file.Close()

	key, err := h.Blobs.Store(header.Filename, file)
	if err != nil {
		monitoring.BlobFailure.WithLabelValues("store").Inc()
		writeError(w, err)
		return
	}

	oldKey := post.Image
	post.Image = key
	if err := h.Posts.Update(post); err != nil {
		h.Blobs.Delete(key)
		writeError(w, err)
		return
	}
	if oldKey != "" {
		if err := h.Blobs.Delete(oldKey); err != nil {
			monitoring.BlobFailure.WithLabelValues("delete").Inc()
			logrus.WithError(err).Warn("replaced image blob left behind")
		}
	}

	writeJSON(w, http.StatusOK, dto.NewPostImageDTO(post))
}

// ownedPost loads the post and checks the principal is its author.
// A post that exists but belongs to someone else is Forbidden, not NotFound.
func (h *PostHandler) ownedPost(r *http.Request) (*models.Post, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}

	post, err := h.Posts.FindByID(id)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != middleware.Principal(r).ID {
		return nil, apperrors.ErrForbidden
	}
	return post, nil
}
