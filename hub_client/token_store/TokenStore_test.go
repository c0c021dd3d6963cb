package token_store

import (
	"testing"
	"time"

	"mercure/common/redis"
	"mercure/common/test_utils"
)

type fakeRedisClient struct {
	values map[string]string
}

func newFakeRedisClient() *fakeRedisClient {
	return &fakeRedisClient{values: make(map[string]string)}
}

func (c *fakeRedisClient) Ping() error {
	return nil
}

func (c *fakeRedisClient) Set(key string, value interface{}) error {
	c.values[key] = value.(string)
	return nil
}

func (c *fakeRedisClient) SetWithExp(key string, value interface{}, expiration time.Duration) error {
	return c.Set(key, value)
}

func (c *fakeRedisClient) Get(key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", redis.NewRedisNotFoundErr()
	}
	return v, nil
}

func (c *fakeRedisClient) Delete(key string) error {
	if _, ok := c.values[key]; !ok {
		return redis.NewRedisNotFoundErr()
	}
	delete(c.values, key)
	return nil
}

func (c *fakeRedisClient) Close() error {
	return nil
}

func TestTokenStore(t *testing.T) {
	fake := newFakeRedisClient()
	store := NewRedisTokenStore(fake)
	test_utils.NewTestGroup("token store", "issued subscriber token bookkeeping").Cases([]*test_utils.Assertion{
		test_utils.NewTestCase("put and get", "", func() bool {
			if err := store.Put("token-a", "subscriber-1", time.Hour); err != nil {
				return false
			}
			subscriberId, err := store.Get("token-a")
			return err == nil && subscriberId == "subscriber-1"
		}),
		test_utils.NewTestCase("keys are namespaced", "", func() bool {
			_, ok := fake.values[TokenStorePrefix+"token-a"]
			return ok
		}),
		test_utils.NewTestCase("revoke removes the token", "", func() bool {
			if err := store.Revoke("token-a"); err != nil {
				return false
			}
			_, err := store.Get("token-a")
			return err != nil
		}),
		test_utils.NewTestCase("unknown token reports not found", "", func() bool {
			_, err := store.Get("missing")
			redisErr, ok := err.(*redis.RedisClientErr)
			return ok && redisErr.Code() == redis.ErrNotFound
		}),
	}).Do(t)
}
