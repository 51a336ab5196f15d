package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_FetchUsers(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		_, _ = w.Write([]byte(`{"users":{"1":"John Doe","2":"Jane Doe"}}`))
	}))
	defer s.Close()

	c := NewClient(s.URL+"/", "secret", 2*time.Second)
	users, err := c.FetchUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 || users["2"] != "Jane Doe" {
		t.Fatalf("unexpected users: %v", users)
	}
}

func TestClient_FetchUserPosts(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/1/posts" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"posts":[{"id":246,"userid":1,"content":"Post about ant"},{"id":161,"userid":1,"content":"Post about elephant"}]}`))
	}))
	defer s.Close()

	c := NewClient(s.URL, "secret", 2*time.Second)
	posts, err := c.FetchUserPosts(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 || posts[0].ID != 246 || posts[0].UserID != 1 || posts[0].Content != "Post about ant" {
		t.Fatalf("unexpected posts: %+v", posts)
	}
	if posts[0].Timestamp != 0 {
		t.Errorf("timestamp must be set by the aggregator, not the client")
	}
}

func TestClient_FetchPostComments(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posts/150/comments" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"comments":[{"id":3893,"postid":150,"content":"Old comment"},{"id":4791,"postid":150,"content":"Boring comment"}]}`))
	}))
	defer s.Close()

	c := NewClient(s.URL, "", 2*time.Second)
	comments, err := c.FetchPostComments(context.Background(), 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments) != 2 || comments[1].PostID != 150 {
		t.Fatalf("unexpected comments: %+v", comments)
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("expected no Authorization header, got %q", got)
		}
		_, _ = w.Write([]byte(`{"comments":[]}`))
	}))
	defer s.Close()

	if _, err := NewClient(s.URL, "", 2*time.Second).FetchPostComments(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_InvalidStatus(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer s.Close()

	c := NewClient(s.URL, "expired", 2*time.Second)
	_, err := c.FetchUsers(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized || statusErr.Resource != resourceUsers {
		t.Fatalf("unexpected status error: %+v", statusErr)
	}
}

func TestClient_Timeout(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(750 * time.Millisecond) // exceed client timeout
		_, _ = w.Write([]byte(`{"posts":[]}`))
	}))
	defer s.Close()

	c := NewClient(s.URL, "secret", 200*time.Millisecond)
	if _, err := c.FetchUserPosts(context.Background(), "1"); err == nil {
		t.Fatalf("expected timeout error, got nil")
	}
}

func TestClient_InvalidJSON(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"posts":"not an array"}`))
	}))
	defer s.Close()

	c := NewClient(s.URL, "secret", 2*time.Second)
	if _, err := c.FetchUserPosts(context.Background(), "1"); err == nil {
		t.Fatalf("expected JSON decode error, got nil")
	}
}

func TestClient_MissingUsersField(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer s.Close()

	users, err := NewClient(s.URL, "secret", 2*time.Second).FetchUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("expected empty non-nil directory, got %v", users)
	}
}
