package post

import "socialpulse/internal/core/post"

// DTOها برای UseCase
type PostDTO struct {
	ID           int    `json:"id"`
	UserID       int    `json:"userid"`
	Content      string `json:"content"`
	Timestamp    int64  `json:"timestamp"`
	CommentCount *int   `json:"commentCount,omitempty"`
}

func FromPost(p post.Post) *PostDTO {
	return &PostDTO{
		ID:        p.ID,
		UserID:    p.UserID,
		Content:   p.Content,
		Timestamp: p.Timestamp,
	}
}

// FromPostWithComments کپی DTO به همراه تعداد کامنت
func FromPostWithComments(p post.Post, count int) *PostDTO {
	dto := FromPost(p)
	dto.CommentCount = &count
	return dto
}
