package otp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps codes in redis with a native TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr string, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Set(ctx context.Context, userType string, userID uint, entry Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key(userType, userID), payload, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, userType string, userID uint) (Entry, bool, error) {
	payload, err := s.client.Get(ctx, key(userType, userID)).Result()
	if errors.Is(err, redis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	var entry Entry
	if err := json.Unmarshal([]byte(payload), &entry); err != nil {
		return Entry{}, false, err
	}
	return entry, true, nil
}

// consumeScript deletes the key only when the stored code matches, making
// the check-and-delete a single server-side step.
var consumeScript = redis.NewScript(`
local payload = redis.call("GET", KEYS[1])
if not payload then
	return 0
end
local entry = cjson.decode(payload)
if entry.code == ARGV[1] then
	redis.call("DEL", KEYS[1])
	return 1
end
return 0
`)

func (s *RedisStore) Consume(ctx context.Context, userType string, userID uint, code string) (bool, error) {
	consumed, err := consumeScript.Run(ctx, s.client, []string{key(userType, userID)}, code).Int()
	if err != nil {
		return false, err
	}
	return consumed == 1, nil
}

func (s *RedisStore) Delete(ctx context.Context, userType string, userID uint) error {
	return s.client.Del(ctx, key(userType, userID)).Err()
}
