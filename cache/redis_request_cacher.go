package cache

import "gopkg.in/redis.v5"

type RedisRequestCacher struct {
	MaxNumber int
	Client    *redis.Client
}

func CreateRedisCache(client *redis.Client, maxNumber int) *RedisRequestCacher {
	return &RedisRequestCacher{MaxNumber: maxNumber, Client: client}
}

func (library *RedisRequestCacher) Write(key string, value []byte) error {
	pushCmd := library.Client.LPush(key, value)

	if pushCmd.Err() != nil {
		return pushCmd.Err()
	}

	trimCmd := library.Client.LTrim(key, 0, int64(library.MaxNumber-1))

	if trimCmd.Err() != nil {
		return trimCmd.Err()
	}

	return nil
}

func (library *RedisRequestCacher) Read(key string) ([]string, error) {
	return library.Client.LRange(key, 0, int64(library.MaxNumber-1)).Result()
}
