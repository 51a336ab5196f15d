package analytics

import (
	"sync"

	"socialpulse/internal/core/post"
)

// Store داده‌های تجمیعی درون حافظه.
// هر تغییر روی یک entry به‌صورت اتمیک انجام می‌شود؛ سازگاری بین mapها تضمین نمی‌شود.
type Store struct {
	mu sync.RWMutex

	postCounts    map[string]int
	userOrder     []string // ترتیب اولین مشاهده، برای tie-break پایدار
	userPosts     map[string][]post.Post
	commentCounts map[int]int
	allPosts      []post.Post

	dedupe    bool
	postIndex map[int]int
}

// NewStore با dedupe=true لیست پست‌ها بر اساس ID به‌روزرسانی (upsert) می‌شود به جای append
func NewStore(dedupe bool) *Store {
	return &Store{
		postCounts:    make(map[string]int),
		userPosts:     make(map[string][]post.Post),
		commentCounts: make(map[int]int),
		dedupe:        dedupe,
		postIndex:     make(map[int]int),
	}
}

// SetUserPosts جایگزینی پست‌های یک کاربر و افزودن آن‌ها به لیست کلی
func (s *Store) SetUserPosts(userID string, posts []post.Post) {
	own := make([]post.Post, len(posts))
	copy(own, posts)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.postCounts[userID]; !ok {
		s.userOrder = append(s.userOrder, userID)
	}
	s.postCounts[userID] = len(own)
	s.userPosts[userID] = own

	for _, p := range own {
		if s.dedupe {
			if i, ok := s.postIndex[p.ID]; ok {
				s.allPosts[i] = p
				continue
			}
			s.postIndex[p.ID] = len(s.allPosts)
		}
		s.allPosts = append(s.allPosts, p)
	}
}

func (s *Store) SetCommentCount(postID, count int) {
	s.mu.Lock()
	s.commentCounts[postID] = count
	s.mu.Unlock()
}

// PostCounts به ترتیب اولین مشاهده کاربر
func (s *Store) PostCounts() []UserCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]UserCount, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, UserCount{UserID: id, Count: s.postCounts[id]})
	}
	return out
}

func (s *Store) UserPosts(userID string) ([]post.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts, ok := s.userPosts[userID]
	if !ok {
		return nil, false
	}
	out := make([]post.Post, len(posts))
	copy(out, posts)
	return out, true
}

// Posts کپی لیست کلی پست‌ها به ترتیب دریافت
func (s *Store) Posts() []post.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]post.Post, len(s.allPosts))
	copy(out, s.allPosts)
	return out
}

func (s *Store) CommentCounts() map[int]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int]int, len(s.commentCounts))
	for id, n := range s.commentCounts {
		out[id] = n
	}
	return out
}

// Sizes تعداد کاربران، پست‌ها و پست‌های دارای شمارش کامنت
func (s *Store) Sizes() (users, posts, comments int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.postCounts), len(s.allPosts), len(s.commentCounts)
}
