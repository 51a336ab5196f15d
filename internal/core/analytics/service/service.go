package analyticsapp

import (
	"context"
	"math/rand/v2"
	"sort"
	"strconv"
	"sync"
	"time"

	"socialpulse/internal/core/analytics"
	"socialpulse/internal/core/post"
	"socialpulse/internal/core/user"
	"socialpulse/internal/metrics"
	sourcePort "socialpulse/internal/ports/source"
	userPort "socialpulse/internal/ports/user"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultSampleSize = 5

type Options struct {
	SampleSize  int // تعداد کاربران در light refresh
	Concurrency int // سقف fetchهای هم‌زمان؛ صفر یعنی بدون محدودیت
	Now         func() time.Time
	Pick        func(n int) int // انتخاب تصادفی یک اندیس در [0, n)
}

// AggregatorService مالک Store است، رفرش‌ها را اجرا می‌کند و به کوئری‌ها از حافظه پاسخ می‌دهد
type AggregatorService struct {
	Source   sourcePort.RemoteSource
	Snapshot userPort.SnapshotRepository
	Store    *analytics.Store
	Logger   *zap.Logger

	sampleSize  int
	concurrency int
	now         func() time.Time
	pick        func(n int) int
}

func NewAggregatorService(
	src sourcePort.RemoteSource,
	snapshot userPort.SnapshotRepository,
	store *analytics.Store,
	logger *zap.Logger,
	opts Options,
) *AggregatorService {
	if opts.SampleSize <= 0 {
		opts.SampleSize = defaultSampleSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Pick == nil {
		opts.Pick = rand.IntN
	}
	return &AggregatorService{
		Source:      src,
		Snapshot:    snapshot,
		Store:       store,
		Logger:      logger,
		sampleSize:  opts.SampleSize,
		concurrency: opts.Concurrency,
		now:         opts.Now,
		pick:        opts.Pick,
	}
}

// FullRefresh همه کاربران، پست‌ها و کامنت‌ها را دوباره دریافت می‌کند
func (s *AggregatorService) FullRefresh(ctx context.Context) (analytics.RefreshReport, error) {
	start := s.now()
	users, usersErr := s.fetchUsers(ctx)
	report, err := s.refreshUsers(ctx, sortedUserIDs(users))
	if usersErr != nil {
		report.Failures++
		err = multierr.Append(usersErr, err)
	}
	report.Kind = analytics.RefreshFull
	report.Users = len(users)
	report.Duration = s.now().Sub(start)
	return report, err
}

// LightRefresh پست‌های حداکثر sampleSize کاربر تصادفی (با جایگذاری) را تازه می‌کند
func (s *AggregatorService) LightRefresh(ctx context.Context) (analytics.RefreshReport, error) {
	start := s.now()

	users, ok, err := s.Snapshot.Load(ctx)
	if err != nil {
		s.Logger.Warn("⚠️ Could not load users snapshot", zap.Error(err))
	}
	var usersErr error
	if !ok {
		users, usersErr = s.fetchUsers(ctx)
	}

	ids := sortedUserIDs(users)
	sample := make([]string, 0, s.sampleSize)
	for i := 0; i < min(s.sampleSize, len(ids)); i++ {
		sample = append(sample, ids[s.pick(len(ids))])
	}

	report, rerr := s.refreshUsers(ctx, sample)
	if usersErr != nil {
		report.Failures++
		rerr = multierr.Append(usersErr, rerr)
	}
	report.Kind = analytics.RefreshLight
	report.Users = len(sample)
	report.Duration = s.now().Sub(start)
	return report, rerr
}

// fetchUsers در صورت خطا آخرین snapshot را همراه خطا برمی‌گرداند و snapshot را دست نمی‌زند
func (s *AggregatorService) fetchUsers(ctx context.Context) (user.Directory, error) {
	users, err := s.Source.FetchUsers(ctx)
	if err != nil {
		s.Logger.Error("❌ Error fetching users", zap.Error(err))
		cached, ok, cerr := s.Snapshot.Load(ctx)
		if cerr != nil {
			s.Logger.Warn("⚠️ Could not load users snapshot", zap.Error(cerr))
		}
		if ok {
			return cached, err
		}
		return user.Directory{}, err
	}

	if err := s.Snapshot.Save(ctx, users); err != nil {
		s.Logger.Warn("⚠️ Could not save users snapshot", zap.Error(err))
	}
	return users, nil
}

// refreshUsers پست‌های هر کاربر و سپس کامنت‌های هر پست را به‌صورت مستقل دریافت می‌کند.
// خطای یک task باعث لغو بقیه نمی‌شود؛ همه خطاها جمع‌آوری و برگردانده می‌شوند.
func (s *AggregatorService) refreshUsers(ctx context.Context, userIDs []string) (analytics.RefreshReport, error) {
	var (
		postsGroup    errgroup.Group
		commentsGroup errgroup.Group
		mu            sync.Mutex
		errs          error
		report        analytics.RefreshReport
	)
	if s.concurrency > 0 {
		postsGroup.SetLimit(s.concurrency)
		commentsGroup.SetLimit(s.concurrency)
	}

	fail := func(err error) {
		mu.Lock()
		errs = multierr.Append(errs, err)
		report.Failures++
		mu.Unlock()
	}

	for _, userID := range userIDs {
		postsGroup.Go(func() error {
			posts, err := s.Source.FetchUserPosts(ctx, userID)
			if err != nil {
				s.Logger.Error("❌ Error fetching posts for user", zap.String("userID", userID), zap.Error(err))
				fail(err)
				return nil
			}

			posts = s.stamp(posts)
			s.Store.SetUserPosts(userID, posts)

			mu.Lock()
			report.Posts += len(posts)
			mu.Unlock()

			for _, p := range posts {
				postID := p.ID
				commentsGroup.Go(func() error {
					comments, err := s.Source.FetchPostComments(ctx, postID)
					if err != nil {
						s.Logger.Error("❌ Error fetching comments for post", zap.Int("postID", postID), zap.Error(err))
						fail(err)
						return nil
					}
					s.Store.SetCommentCount(postID, len(comments))

					mu.Lock()
					report.Comments++
					mu.Unlock()
					return nil
				})
			}
			return nil
		})
	}

	// همه Goهای commentsGroup داخل taskهای postsGroup صدا زده می‌شوند
	_ = postsGroup.Wait()
	_ = commentsGroup.Wait()

	s.updateGauges()
	return report, errs
}

// stamp زمان دریافت را روی هر پست می‌گذارد
func (s *AggregatorService) stamp(posts []post.Post) []post.Post {
	out := make([]post.Post, len(posts))
	for i, p := range posts {
		p.Timestamp = s.now().UnixMilli()
		out[i] = p
	}
	return out
}

func (s *AggregatorService) updateGauges() {
	users, posts, comments := s.Store.Sizes()
	metrics.TrackedUsers.Set(float64(users))
	metrics.TrackedPosts.Set(float64(posts))
	metrics.TrackedCommentCounts.Set(float64(comments))
}

// sortedUserIDs کلیدهای عددی به‌صورت صعودی عددی و بقیه بعد از آن‌ها به ترتیب الفبا
func sortedUserIDs(users user.Directory) []string {
	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, aErr := strconv.Atoi(ids[i])
		b, bErr := strconv.Atoi(ids[j])
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
	return ids
}
