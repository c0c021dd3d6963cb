package token_store

import (
	"fmt"
	"time"

	"mercure/common/redis"
)

const TokenStorePrefix = "subscriber-token-"

// ITokenStore tracks subscriber tokens issued by the application so they can
// be looked up or revoked before their exp claim runs out.
type ITokenStore interface {
	Put(token string, subscriberId string, ttl time.Duration) error
	Get(token string) (string, error)
	Revoke(token string) error
}

type RedisTokenStore struct {
	redis redis.IRedisClient
}

func NewRedisTokenStore(client redis.IRedisClient) ITokenStore {
	return &RedisTokenStore{redis: client}
}

func (s *RedisTokenStore) assembleKey(key string) string {
	return fmt.Sprintf("%s%s", TokenStorePrefix, key)
}

func (s *RedisTokenStore) Put(token string, subscriberId string, ttl time.Duration) error {
	if ttl == 0 {
		return s.redis.Set(s.assembleKey(token), subscriberId)
	}
	return s.redis.SetWithExp(s.assembleKey(token), subscriberId, ttl)
}

func (s *RedisTokenStore) Get(token string) (string, error) {
	return s.redis.Get(s.assembleKey(token))
}

func (s *RedisTokenStore) Revoke(token string) error {
	return s.redis.Delete(s.assembleKey(token))
}
