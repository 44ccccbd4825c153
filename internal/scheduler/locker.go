package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockPrefix = "parking:job:"

// releaseScript deletes the lock only if it is still held by the caller.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

//go:generate mockgen -source=locker.go -destination=mock_locker.go -package=scheduler
type Locker interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, name string) error
}

// RedisLocker is a lock shared by every instance connected to the same redis.
type RedisLocker struct {
	client redis.Cmdable
	owner  string
}

func NewRedisLocker(client redis.Cmdable) *RedisLocker {
	return &RedisLocker{
		client: client,
		owner:  uuid.NewString(),
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, lockPrefix+name, l.owner, ttl).Result()
}

func (l *RedisLocker) Release(ctx context.Context, name string) error {
	return l.client.Eval(ctx, releaseScript, []string{lockPrefix + name}, l.owner).Err()
}

// LocalLocker only excludes runs within this process.
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]time.Time
	now  func() time.Time
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		held: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (l *LocalLocker) Acquire(_ context.Context, name string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if expires, ok := l.held[name]; ok && l.now().Before(expires) {
		return false, nil
	}
	l.held[name] = l.now().Add(ttl)
	return true, nil
}

func (l *LocalLocker) Release(_ context.Context, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, name)
	return nil
}
