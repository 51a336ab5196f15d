package analytics

import (
	"errors"
	"time"
)

var (
	ErrUsersNotReady    = errors.New("users data not available yet")
	ErrCommentsNotReady = errors.New("comments data not available yet")
	ErrUserNotFound     = errors.New("user not tracked")
)

// نوع رفرش
const (
	RefreshFull  = "full"
	RefreshLight = "light"
)

// RefreshReport خلاصه یک دور رفرش
type RefreshReport struct {
	Kind     string
	Users    int
	Posts    int
	Comments int
	Failures int
	Duration time.Duration
}

// Health پاسخ /health
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// UserCount تعداد پست‌های یک کاربر
type UserCount struct {
	UserID string
	Count  int
}
