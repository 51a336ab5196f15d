package memory

import (
	"context"
	"sync"
	"time"

	"socialpulse/internal/core/user"
	userPort "socialpulse/internal/ports/user"
)

// UsersSnapshotRepositoryMemory نگهداری snapshot کاربران در حافظه؛ ttl صفر یعنی بدون انقضا
type UsersSnapshotRepositoryMemory struct {
	mu      sync.RWMutex
	users   user.Directory
	savedAt time.Time
	ttl     time.Duration
	now     func() time.Time
}

var _ userPort.SnapshotRepository = (*UsersSnapshotRepositoryMemory)(nil)

func NewUsersSnapshotRepositoryMemory(ttl time.Duration, now func() time.Time) *UsersSnapshotRepositoryMemory {
	if now == nil {
		now = time.Now
	}
	return &UsersSnapshotRepositoryMemory{ttl: ttl, now: now}
}

func (r *UsersSnapshotRepositoryMemory) Save(ctx context.Context, users user.Directory) error {
	r.mu.Lock()
	r.users = users.Clone()
	r.savedAt = r.now()
	r.mu.Unlock()
	return nil
}

func (r *UsersSnapshotRepositoryMemory) Load(ctx context.Context) (user.Directory, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.users == nil {
		return nil, false, nil
	}
	if r.ttl > 0 && r.now().Sub(r.savedAt) > r.ttl {
		return nil, false, nil
	}
	return r.users.Clone(), true, nil
}
