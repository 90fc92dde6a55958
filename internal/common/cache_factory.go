package common

import "team-analysis/standup/internal/logging"

// NewCache selects the cache backend: Redis when a host is configured,
// otherwise the in-process store.
func NewCache(redisHost string) CacheInterface {
	if redisHost != "" {
		redisCache, err := NewRedisCacheService(redisHost)
		if err == nil {
			logging.Info("Using Redis cache backend", "host", redisHost)
			return redisCache
		}
		logging.Warn("Redis unavailable, falling back to in-memory cache", "error", err.Error())
	}
	return NewCacheService(300, 600)
}
