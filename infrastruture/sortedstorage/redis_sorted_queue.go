package sortedstorage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix   = "pathfinder"
	defaultCapacity = 20
	runsKeyFmt      = "%s:board:%s:runs"
)

// RedisRunLog keeps each board's run summaries in a Redis sorted set scored by
// creation time. The set is capped to capacity and expires with the board.
type RedisRunLog struct {
	client   *redis.Client
	prefix   string
	capacity int64
	ttl      time.Duration
}

var _ i.RunHistory = &RedisRunLog{}

// NewRedisRunLog initializes a RedisRunLog with the provided Redis client, capacity and TTL.
func NewRedisRunLog(client *redis.Client, prefix string, capacity int64, ttlSeconds int) (*RedisRunLog, error) {
	if prefix == "" {
		prefix = defaultPrefix
	}
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	return &RedisRunLog{
		client:   client,
		prefix:   prefix,
		capacity: capacity,
		ttl:      time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Record adds the summary and trims the oldest entries beyond capacity.
func (r *RedisRunLog) Record(ctx context.Context, boardID uuid.UUID, summary dmn.RunSummary) error {
	member, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	key := r.key(boardID)
	pipe := r.client.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(summary.CreatedAt.UnixNano()), Member: member})
	pipe.ZRemRangeByRank(ctx, key, 0, -r.capacity-1)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// Recent returns up to n summaries, newest first.
func (r *RedisRunLog) Recent(ctx context.Context, boardID uuid.UUID, n int64) ([]dmn.RunSummary, error) {
	if n <= 0 {
		return []dmn.RunSummary{}, nil
	}

	members, err := r.client.ZRevRange(ctx, r.key(boardID), 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	summaries := make([]dmn.RunSummary, 0, len(members))
	for _, m := range members {
		var s dmn.RunSummary
		if err := json.Unmarshal([]byte(m), &s); err != nil {
			continue
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}

func (r *RedisRunLog) key(boardID uuid.UUID) string {
	return fmt.Sprintf(runsKeyFmt, r.prefix, boardID)
}
