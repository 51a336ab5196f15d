package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"socialpulse/internal/core/post"
	"socialpulse/internal/core/user"
	"socialpulse/internal/metrics"
	sourcePort "socialpulse/internal/ports/source"
)

const (
	resourceUsers    = "users"
	resourcePosts    = "posts"
	resourceComments = "comments"
)

// StatusError پاسخ غیر 2xx از سرویس ارزیابی
type StatusError struct {
	Resource   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: upstream returned status %d", e.Resource, e.StatusCode)
}

// Client پیاده‌سازی RemoteSource با HTTP و توکن Bearer ثابت
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Token   string
}

var _ sourcePort.RemoteSource = (*Client)(nil)

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 5 * time.Second,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (c *Client) FetchUsers(ctx context.Context) (user.Directory, error) {
	var body struct {
		Users user.Directory `json:"users"`
	}
	if err := c.get(ctx, resourceUsers, "/users", &body); err != nil {
		return nil, err
	}
	if body.Users == nil {
		body.Users = user.Directory{}
	}
	return body.Users, nil
}

func (c *Client) FetchUserPosts(ctx context.Context, userID string) ([]post.Post, error) {
	var body struct {
		Posts []post.Post `json:"posts"`
	}
	if err := c.get(ctx, resourcePosts, "/users/"+url.PathEscape(userID)+"/posts", &body); err != nil {
		return nil, err
	}
	return body.Posts, nil
}

func (c *Client) FetchPostComments(ctx context.Context, postID int) ([]post.Comment, error) {
	var body struct {
		Comments []post.Comment `json:"comments"`
	}
	if err := c.get(ctx, resourceComments, "/posts/"+strconv.Itoa(postID)+"/comments", &body); err != nil {
		return nil, err
	}
	return body.Comments, nil
}

func (c *Client) get(ctx context.Context, resource, path string, out any) (err error) {
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		metrics.RemoteRequestsTotal.WithLabelValues(resource, outcome).Inc()
		metrics.RemoteRequestDurationSeconds.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", resource, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Resource: resource, StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", resource, err)
	}
	return nil
}
