package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis and verifies the connection with a
// ping. A failed ping is reported to the caller, who decides whether to
// run without a cache.
func NewRedisClient(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("could not connect to redis: %v", err)
	}

	log.Println("[REDIS] Connected successfully")
	return client, nil
}

// RedisStore keeps each position as a JSON record under
// "position:{hash}:{player}". Entries never expire here; retention is an
// operational concern.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(hash int64, player int) string {
	return fmt.Sprintf("position:%d:%d", hash, player)
}

func (s *RedisStore) Get(ctx context.Context, hash int64, player int) (*Record, error) {
	data, err := s.client.Get(ctx, redisKey(hash, player)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get position: %v", err)
	}

	var rec Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode position record: %v", err)
	}
	return &rec, nil
}

func (s *RedisStore) Put(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode position record: %v", err)
	}
	if err := s.client.Set(ctx, redisKey(rec.Hash, rec.Player), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store position: %v", err)
	}
	return nil
}
