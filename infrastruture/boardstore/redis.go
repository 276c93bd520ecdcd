package boardstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix  = "pathfinder"
	boardKeyFmt    = "%s:board:%s"
	boardLockFmt   = "%s:board:%s:lock"
	lockExpiry     = 8 * time.Second
	defaultTTLSecs = 3600
)

// RedisStore keeps boards in Redis so any API instance can serve any board.
// Boards expire after ttl without changes; locks are redsync mutexes.
type RedisStore struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

var _ i.BoardStore = &RedisStore{}

// NewRedisStore initializes a RedisStore with the provided Redis client and TTL.
func NewRedisStore(client *redis.Client, prefix string, ttlSeconds int) (*RedisStore, error) {
	if prefix == "" {
		prefix = defaultPrefix
	}
	if ttlSeconds <= 0 {
		ttlSeconds = defaultTTLSecs
	}

	return &RedisStore{
		client: client,
		locker: redsync.New(goredis.NewPool(client)),
		prefix: prefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Load implements i.BoardStore.
func (r *RedisStore) Load(ctx context.Context, id uuid.UUID) (*grid.Grid, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dmn.ErrBoardNotFound
		}
		return nil, err
	}

	var layout grid.Layout
	if err := json.Unmarshal(raw, &layout); err != nil {
		return nil, fmt.Errorf("decoding board %s: %w", id, err)
	}

	return grid.FromLayout(layout)
}

// Save implements i.BoardStore. Saving refreshes the board's TTL.
func (r *RedisStore) Save(ctx context.Context, id uuid.UUID, g *grid.Grid) error {
	raw, err := json.Marshal(g.Layout())
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(id), raw, r.ttl).Err()
}

// Delete implements i.BoardStore.
func (r *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, r.key(id)).Err()
}

// Lock implements i.BoardStore.
func (r *RedisStore) Lock(ctx context.Context, id uuid.UUID) (func(), error) {
	mutex := r.locker.NewMutex(fmt.Sprintf(boardLockFmt, r.prefix, id), redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		_, _ = mutex.Unlock()
	}, nil
}

func (r *RedisStore) key(id uuid.UUID) string {
	return fmt.Sprintf(boardKeyFmt, r.prefix, id)
}
