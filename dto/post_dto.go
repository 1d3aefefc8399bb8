package dto

import (
	"time"

	"blogapi/models"
)

// PostListDTO is the lighter projection for listings and feeds: the author
// collapses to an email and comments to a count
type PostListDTO struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	CreatedAt    time.Time `json:"created_at"`
	Content      string    `json:"content"`
	Image        string    `json:"image,omitempty"`
	CommentCount int       `json:"comment_count"`
}

// PostDetailDTO nests the full author profile and the comment list
type PostDetailDTO struct {
	ID        uint         `json:"id"`
	Title     string       `json:"title"`
	Author    UserListDTO  `json:"author"`
	CreatedAt time.Time    `json:"created_at"`
	Content   string       `json:"content"`
	Image     string       `json:"image,omitempty"`
	Comments  []CommentDTO `json:"comments"`
}

// PostImageDTO carries only the blob reference
type PostImageDTO struct {
	ID    uint   `json:"id"`
	Image string `json:"image,omitempty"`
}

// CommentDTO projects a comment with its author's email and the parent
// post's title
type CommentDTO struct {
	ID        uint      `json:"id"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	Content   string    `json:"content"`
	PostID    uint      `json:"post_id"`
	PostTitle string    `json:"post_title,omitempty"`
}

func NewPostListDTO(p *models.Post) PostListDTO {
	return PostListDTO{
		ID:           p.ID,
		Title:        p.Title,
		Author:       p.Author.Email,
		CreatedAt:    p.CreatedAt,
		Content:      p.Content,
		Image:        p.Image,
		CommentCount: len(p.Comments),
	}
}

func NewPostListDTOs(posts []models.Post) []PostListDTO {
	out := make([]PostListDTO, len(posts))
	for i := range posts {
		out[i] = NewPostListDTO(&posts[i])
	}
	return out
}

func NewPostDetailDTO(p *models.Post) PostDetailDTO {
	comments := make([]CommentDTO, len(p.Comments))
	for i := range p.Comments {
		comments[i] = NewCommentDTO(&p.Comments[i])
		comments[i].PostTitle = p.Title
	}
	return PostDetailDTO{
		ID:        p.ID,
		Title:     p.Title,
		Author:    NewUserListDTO(&p.Author),
		CreatedAt: p.CreatedAt,
		Content:   p.Content,
		Image:     p.Image,
		Comments:  comments,
	}
}

func NewPostImageDTO(p *models.Post) PostImageDTO {
	return PostImageDTO{ID: p.ID, Image: p.Image}
}

func NewCommentDTO(c *models.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID,
		Author:    c.Author.Email,
		CreatedAt: c.CreatedAt,
		Content:   c.Content,
		PostID:    c.PostID,
		PostTitle: c.Post.Title,
	}
}

func NewCommentDTOs(comments []models.Comment) []CommentDTO {
	out := make([]CommentDTO, len(comments))
	for i := range comments {
		out[i] = NewCommentDTO(&comments[i])
	}
	return out
}
