package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/service/cache/provider"
)

type impl struct {
	pool *redis.Pool
}

func NewRedis(pool *redis.Pool) provider.Provider {
	return &impl{pool}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	conn := im.pool.Get()
	defer conn.Close()

	val, err := redis.Bytes(conn.Do("GET", key))
	if err == redis.ErrNil {
		return nil, time.Duration(0), provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis GET failed")
		return nil, time.Duration(0), err
	}

	ttl, err := redis.Int(conn.Do("TTL", key))
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis TTL failed")
		return nil, time.Duration(0), err
	}

	return val, time.Duration(ttl) * time.Second, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	conn := im.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("SETEX", key, int(ttl.Seconds()), value); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis SETEX failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	conn := im.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("DEL", key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis DEL failed")
		return err
	}
	return nil
}
