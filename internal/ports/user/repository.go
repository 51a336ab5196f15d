package user

import (
	"context"

	"socialpulse/internal/core/user"
)

// SnapshotRepository پورت برای نگهداری آخرین لیست کاربران دریافت‌شده
type SnapshotRepository interface {
	Save(ctx context.Context, users user.Directory) error
	// Load اگر snapshot وجود نداشته باشد یا منقضی شده باشد ok=false برمی‌گرداند
	Load(ctx context.Context) (users user.Directory, ok bool, err error)
}

// DTOها برای UseCase
type TopUserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PostCount int    `json:"postCount"`
}
