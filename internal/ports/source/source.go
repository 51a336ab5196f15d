package source

import (
	"context"

	"socialpulse/internal/core/post"
	"socialpulse/internal/core/user"
)

// RemoteSource پورت خروجی به سرویس ارزیابی (users / posts / comments)
type RemoteSource interface {
	FetchUsers(ctx context.Context) (user.Directory, error)
	FetchUserPosts(ctx context.Context, userID string) ([]post.Post, error)
	FetchPostComments(ctx context.Context, postID int) ([]post.Comment, error)
}
