package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

type RedisStore struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client rueidis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *RedisStore) key(id string) string {
	return r.prefix + id
}

func (r *RedisStore) Put(ctx context.Context, id string, msg Message) error {
	if id == "" {
		return ErrEmptyID
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode flash message: %w", err)
	}

	cmd := r.client.B().Set().Key(r.key(id)).Value(string(payload)).ExSeconds(int64(r.ttl/time.Second)).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisStore) Pop(ctx context.Context, id string) (Message, bool, error) {
	if id == "" {
		return Message{}, false, nil
	}

	cmd := r.client.B().Getdel().Key(r.key(id)).Build()
	payload, err := r.client.Do(ctx, cmd).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return Message{}, false, nil
		}
		return Message{}, false, err
	}

	var msg Message
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return Message{}, false, fmt.Errorf("decode flash message: %w", err)
	}

	return msg, true, nil
}
