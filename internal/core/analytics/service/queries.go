package analyticsapp

import (
	"context"
	"fmt"
	"sort"

	"socialpulse/internal/core/analytics"
	postPort "socialpulse/internal/ports/post"
	userPort "socialpulse/internal/ports/user"
)

// TopUsers کاربران بر اساس تعداد پست به‌صورت نزولی؛ در تساوی ترتیب اولین مشاهده حفظ می‌شود
func (s *AggregatorService) TopUsers(ctx context.Context, limit int) ([]*userPort.TopUserDTO, error) {
	users, ok, err := s.Snapshot.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users snapshot: %w", err)
	}
	if !ok {
		return nil, analytics.ErrUsersNotReady
	}

	counts := s.Store.PostCounts()
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}

	out := make([]*userPort.TopUserDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, &userPort.TopUserDTO{
			ID:        c.UserID,
			Name:      users[c.UserID],
			PostCount: c.Count,
		})
	}
	return out, nil
}

// UserPosts آخرین لیست پست‌های دریافت‌شده برای یک کاربر
func (s *AggregatorService) UserPosts(ctx context.Context, userID string) ([]*postPort.PostDTO, error) {
	posts, ok := s.Store.UserPosts(userID)
	if !ok {
		return nil, analytics.ErrUserNotFound
	}

	out := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, postPort.FromPost(p))
	}
	return out, nil
}

// LatestPosts بر اساس زمان دریافت به‌صورت نزولی؛ پست‌های تکراری حذف نمی‌شوند
func (s *AggregatorService) LatestPosts(ctx context.Context, limit int) ([]*postPort.PostDTO, error) {
	posts := s.Store.Posts()
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].Timestamp > posts[j].Timestamp })
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}

	out := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, postPort.FromPost(p))
	}
	return out, nil
}

// PopularPosts همه پست‌هایی که تعداد کامنتشان برابر بیشینه است.
// هر پست یک بار و با آخرین نسخه دریافت‌شده برگردانده می‌شود، از جدیدترین به قدیمی‌ترین،
// حتی وقتی DEDUPE_POSTS خاموش است و لیست کلی نسخه‌های تکراری دارد.
func (s *AggregatorService) PopularPosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	counts := s.Store.CommentCounts()
	if len(counts) == 0 {
		return nil, analytics.ErrCommentsNotReady
	}

	best := -1
	for _, n := range counts {
		if n > best {
			best = n
		}
	}

	posts := s.Store.Posts()
	seen := make(map[int]struct{})
	out := make([]*postPort.PostDTO, 0)
	for i := len(posts) - 1; i >= 0; i-- {
		p := posts[i]
		if _, dup := seen[p.ID]; dup {
			continue
		}
		n, ok := counts[p.ID]
		if !ok || n != best {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, postPort.FromPostWithComments(p, n))
	}
	return out, nil
}

// Health همیشه موفق است
func (s *AggregatorService) Health() analytics.Health {
	return analytics.Health{
		Status:    "OK",
		Timestamp: s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}
