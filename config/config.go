package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var errNotPositive = errors.New("must be positive")

type Config struct {
	ServerAddress     string
	RedisAddress      string
	CacheTTL          time.Duration
	RateLimitCapacity int
	RateLimitRefill   time.Duration
	LogLevel          logrus.Level
}

func Default() Config {
	return Config{
		ServerAddress:     ":8080",
		CacheTTL:          10 * time.Minute,
		RateLimitCapacity: 5,
		RateLimitRefill:   time.Minute,
		LogLevel:          logrus.InfoLevel,
	}
}

// Load reads the environment, after merging a .env file when one exists.
// Malformed values keep their defaults and are reported through warn.
func Load(warn func(key, value string, err error)) Config {
	// .env es opcional
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv, warn)
}

func FromLookup(lookup func(string) (string, bool), warn func(key, value string, err error)) Config {
	cfg := Default()
	if warn == nil {
		warn = func(string, string, error) {}
	}

	if v, ok := lookup("SERVER_ADDRESS"); ok && v != "" {
		cfg.ServerAddress = v
	}
	if v, ok := lookup("REDIS_ADDRESS"); ok {
		cfg.RedisAddress = v
	}
	if v, ok := lookup("CACHE_TTL"); ok && v != "" {
		if d, err := time.ParseDuration(v); err != nil {
			warn("CACHE_TTL", v, err)
		} else {
			cfg.CacheTTL = d
		}
	}
	if v, ok := lookup("RATE_LIMIT_CAPACITY"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n <= 0 {
			err = errNotPositive
		}
		if err != nil {
			warn("RATE_LIMIT_CAPACITY", v, err)
		} else {
			cfg.RateLimitCapacity = n
		}
	}
	if v, ok := lookup("RATE_LIMIT_REFILL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err == nil && d <= 0 {
			err = errNotPositive
		}
		if err != nil {
			warn("RATE_LIMIT_REFILL", v, err)
		} else {
			cfg.RateLimitRefill = d
		}
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		if lvl, err := logrus.ParseLevel(v); err != nil {
			warn("LOG_LEVEL", v, err)
		} else {
			cfg.LogLevel = lvl
		}
	}

	return cfg
}
