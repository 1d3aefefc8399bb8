package handlers

import (
	"net/http"
	"strconv"

	"blogapi/dto"
	"blogapi/middleware"
	"blogapi/repositories"
)

// FeedHandler composes the viewer's feed
type FeedHandler struct {
	Posts repositories.PostRepository
}

func NewFeedHandler(posts repositories.PostRepository) *FeedHandler {
	return &FeedHandler{Posts: posts}
}

// GetFeed returns posts by the viewer and everyone the viewer follows,
// newest first
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	principal := middleware.Principal(r)

	noPosts := 100
	if noPostsStr := r.URL.Query().Get("no"); noPostsStr != "" {
		if num, err := strconv.Atoi(noPostsStr); err == nil && num > 0 {
			noPosts = num
		}
	}

	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if num, err := strconv.Atoi(offsetStr); err == nil && num > 0 {
			offset = num
		}
	}

	posts, err := h.Posts.Feed(principal.ID, noPosts, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewPostListDTOs(posts))
}
