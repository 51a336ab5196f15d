package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"socialpulse/internal/core/user"
	userPort "socialpulse/internal/ports/user"

	"github.com/go-redis/redis/v8"
)

const usersSnapshotKey = "analytics:users"

// UsersSnapshotRepositoryRedis snapshot کاربران را به‌صورت JSON در یک کلید Redis نگه می‌دارد
type UsersSnapshotRepositoryRedis struct {
	Client *redis.Client
	TTL    time.Duration // صفر یعنی بدون انقضا
}

var _ userPort.SnapshotRepository = (*UsersSnapshotRepositoryRedis)(nil)

func NewUsersSnapshotRepositoryRedis(client *redis.Client, ttl time.Duration) *UsersSnapshotRepositoryRedis {
	return &UsersSnapshotRepositoryRedis{
		Client: client,
		TTL:    ttl,
	}
}

func (r *UsersSnapshotRepositoryRedis) Save(ctx context.Context, users user.Directory) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, usersSnapshotKey, raw, r.TTL).Err()
}

func (r *UsersSnapshotRepositoryRedis) Load(ctx context.Context) (user.Directory, bool, error) {
	raw, err := r.Client.Get(ctx, usersSnapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	users := user.Directory{}
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, false, err
	}
	return users, true, nil
}
