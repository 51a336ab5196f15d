package analytics

import (
	"testing"

	"socialpulse/internal/core/post"
)

func TestStore_SetUserPosts_AppendsDuplicates(t *testing.T) {
	s := NewStore(false)
	posts := []post.Post{{ID: 1, UserID: 7, Timestamp: 1}, {ID: 2, UserID: 7, Timestamp: 1}}

	s.SetUserPosts("7", posts)
	s.SetUserPosts("7", posts)

	if got := len(s.Posts()); got != 4 {
		t.Fatalf("expected 4 posts in flat list, got %d", got)
	}
	counts := s.PostCounts()
	if len(counts) != 1 || counts[0].UserID != "7" || counts[0].Count != 2 {
		t.Fatalf("unexpected post counts: %+v", counts)
	}
}

func TestStore_SetUserPosts_Dedupe(t *testing.T) {
	s := NewStore(true)
	s.SetUserPosts("7", []post.Post{{ID: 1, Content: "old", Timestamp: 1}})
	s.SetUserPosts("7", []post.Post{{ID: 1, Content: "new", Timestamp: 2}, {ID: 2, Timestamp: 2}})

	all := s.Posts()
	if len(all) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(all))
	}
	if all[0].Content != "new" || all[0].Timestamp != 2 {
		t.Errorf("expected post 1 to be replaced in place, got %+v", all[0])
	}
}

func TestStore_PostCounts_InsertionOrder(t *testing.T) {
	s := NewStore(false)
	s.SetUserPosts("b", nil)
	s.SetUserPosts("a", []post.Post{{ID: 1}})
	s.SetUserPosts("b", []post.Post{{ID: 2}})

	counts := s.PostCounts()
	if len(counts) != 2 || counts[0].UserID != "b" || counts[1].UserID != "a" {
		t.Fatalf("expected first-seen order [b a], got %+v", counts)
	}
	if counts[0].Count != 1 {
		t.Errorf("expected replaced count 1 for b, got %d", counts[0].Count)
	}
}

func TestStore_ReadsAreCopies(t *testing.T) {
	s := NewStore(false)
	in := []post.Post{{ID: 1, Content: "T"}}
	s.SetUserPosts("1", in)

	in[0].Content = "CHANGED"
	out, ok := s.UserPosts("1")
	if !ok || out[0].Content != "T" {
		t.Fatalf("store must not alias caller slice, got %+v", out)
	}

	out[0].Content = "CHANGED"
	if again, _ := s.UserPosts("1"); again[0].Content != "T" {
		t.Fatalf("read must return a copy")
	}

	s.SetCommentCount(1, 3)
	counts := s.CommentCounts()
	counts[1] = 100
	if s.CommentCounts()[1] != 3 {
		t.Fatalf("comment counts must be copied")
	}
}

func TestStore_Sizes(t *testing.T) {
	s := NewStore(false)
	s.SetUserPosts("1", []post.Post{{ID: 1}, {ID: 2}})
	s.SetCommentCount(1, 0)

	users, posts, comments := s.Sizes()
	if users != 1 || posts != 2 || comments != 1 {
		t.Fatalf("unexpected sizes users=%d posts=%d comments=%d", users, posts, comments)
	}
}
