// ABOUTME: Configuration management for the framework with environment variable support
// ABOUTME: Defines configuration structures for fetching, caching, and logging

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all framework configuration
type Config struct {
	// Client contains outbound HTTP configuration
	Client ClientConfig

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Log contains logging configuration
	Log LogConfig
}

// ClientConfig holds outbound HTTP configuration
type ClientConfig struct {
	// UserAgent is sent with every resource fetch
	UserAgent string

	// TimeoutSeconds bounds a single fetch
	TimeoutSeconds int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/sqlite/redis)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file location
	Path string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultTTLSeconds is the default TTL for cached resources in seconds.
	// Zero keeps entries until evicted.
	DefaultTTLSeconds int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum level emitted (debug/info/warn/error).
	// Unrecognized values fall back to info.
	Level string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Client: ClientConfig{
			UserAgent:      getEnvOrDefault("USER_AGENT", "syndikit/1.0"),
			TimeoutSeconds: getEnvAsIntOrDefault("HTTP_TIMEOUT", 30),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "resources.db"),
			},
			Memory: MemoryConfig{
				DefaultTTLSeconds: getEnvAsIntOrDefault("MEMORY_CACHE_TTL", 900),
			},
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Client.UserAgent == "" {
		return errors.New("user agent cannot be empty")
	}

	if c.Client.TimeoutSeconds < 1 {
		return errors.New("http timeout must be at least 1 second")
	}

	switch c.Cache.Type {
	case "memory":
	case "sqlite":
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	case "redis":
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'sqlite' or 'redis'")
	}

	if c.Cache.Memory.DefaultTTLSeconds < 0 {
		return errors.New("memory cache ttl cannot be negative")
	}

	return nil
}
