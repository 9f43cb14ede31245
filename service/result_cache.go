package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"github.com/dvillagrablanco/inmova-app-sub018/config"
	"github.com/dvillagrablanco/inmova-app-sub018/repository"
)

// resultCache memoizes pure computations keyed by a hash of their input.
// Cache failures are logged and never change the computed result.
type resultCache struct {
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *logrus.Logger
}

func newResultCache(cache repository.CacheRepository, ttl time.Duration, logger *logrus.Logger) resultCache {
	if logger == nil {
		logger = config.DiscardLogger()
	}
	return resultCache{cache: cache, ttl: ttl, logger: logger}
}

func cacheKey(prefix string, input any) (string, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%016x", prefix, xxhash.Sum64(payload)), nil
}

func loadOrCompute[T any](
	ctx context.Context,
	rc resultCache,
	prefix string,
	input any,
	compute func() T,
) T {
	if rc.cache == nil {
		return compute()
	}

	key, err := cacheKey(prefix, input)
	if err != nil {
		config.LogWarning(rc.logger, "service", "loadOrCompute", "cache key", err)
		return compute()
	}

	if raw, ok := rc.cache.Get(ctx, key); ok {
		var cached T
		err := json.Unmarshal([]byte(raw), &cached)
		if err == nil {
			return cached
		}
		config.LogWarning(rc.logger, "service", "loadOrCompute", "decode "+key, err)
	}

	result := compute()

	payload, err := json.Marshal(result)
	if err != nil {
		config.LogWarning(rc.logger, "service", "loadOrCompute", "encode "+key, err)
		return result
	}
	if err := rc.cache.Set(ctx, key, string(payload), rc.ttl); err != nil {
		config.LogWarning(rc.logger, "service", "loadOrCompute", "store "+key, err)
	}

	return result
}
