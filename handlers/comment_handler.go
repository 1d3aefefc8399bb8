package handlers

import (
	"encoding/json"
	"net/http"

	"blogapi/apperrors"
	"blogapi/dto"
	"blogapi/middleware"
	"blogapi/models"
	"blogapi/monitoring"
	"blogapi/repositories"
)

// CommentHandler handles comment CRUD
type CommentHandler struct {
	Comments repositories.CommentRepository
}

func NewCommentHandler(comments repositories.CommentRepository) *CommentHandler {
	return &CommentHandler{Comments: comments}
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.Comments.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCommentDTOs(comments))
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal := middleware.Principal(r)

	var requestData struct {
		PostID  uint   `json:"post_id"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		writeError(w, apperrors.Validation("body", "invalid JSON"))
		return
	}

	comment := models.Comment{
		AuthorID: principal.ID,
		PostID:   requestData.PostID,
		Content:  requestData.Content,
	}
	if err := h.Comments.Create(&comment); err != nil {
		writeError(w, err)
		return
	}

	monitoring.CommentsCreated.Inc()
	comment.Author = *principal
	writeJSON(w, http.StatusCreated, dto.NewCommentDTO(&comment))
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	comment, err := h.ownedComment(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var requestData struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		writeError(w, apperrors.Validation("body", "invalid JSON"))
		return
	}

	comment.Content = requestData.Content
	if err := h.Comments.Update(comment); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCommentDTO(comment))
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	comment, err := h.ownedComment(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Comments.Delete(comment.ID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CommentHandler) ownedComment(r *http.Request) (*models.Comment, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, err
	}

	comment, err := h.Comments.FindByID(id)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID != middleware.Principal(r).ID {
		return nil, apperrors.ErrForbidden
	}
	return comment, nil
}
