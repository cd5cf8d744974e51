package mystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// redisStore keeps all entities of one kind as JSON values in a single hash.
type redisStore[T any] struct {
	client *redis.Client
	hash   string
}

func newRedisStore[T any](c context.Context, redisURL string) (*redisStore[T], func(), error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(c, redisPingTimeout)
	defer cancel()

	err = client.Ping(ctx).Err()
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("error pinging redis: %w", err)
	}

	return newRedisStoreWithClient[T](client), func() {
		client.Close()
	}, nil
}

func newRedisStoreWithClient[T any](client *redis.Client) *redisStore[T] {
	return &redisStore[T]{
		client: client,
		hash:   "mystore:" + kindOf[T](),
	}
}

func (s *redisStore[T]) Put(c context.Context, uid string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshalling entity %s with uid %s: %s", s.hash, uid, err)
	}

	err = s.client.HSet(c, s.hash, uid, data).Err()
	if err != nil {
		return fmt.Errorf("error storing entity %s with uid %s: %s", s.hash, uid, err)
	}

	return nil
}

func (s *redisStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	var value T

	data, err := s.client.HGet(c, s.hash, uid).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return value, false, nil
		}
		return value, false, fmt.Errorf("error fetching entity %s with uid %s: %s", s.hash, uid, err)
	}

	err = json.Unmarshal(data, &value)
	if err != nil {
		return value, false, fmt.Errorf("error parsing entity %s with uid %s: %s", s.hash, uid, err)
	}

	return value, true, nil
}

func (s *redisStore[T]) List(c context.Context) ([]T, error) {
	all, err := s.client.HGetAll(c, s.hash).Result()
	if err != nil {
		return nil, fmt.Errorf("error fetching all entities %s: %s", s.hash, err)
	}

	uids := make([]string, 0, len(all))
	for uid := range all {
		uids = append(uids, uid)
	}
	sort.Strings(uids)

	result := make([]T, 0, len(all))
	for _, uid := range uids {
		var value T
		err := json.Unmarshal([]byte(all[uid]), &value)
		if err != nil {
			return nil, fmt.Errorf("error parsing entity %s with uid %s: %s", s.hash, uid, err)
		}
		result = append(result, value)
	}

	return result, nil
}
