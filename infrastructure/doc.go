// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on go-cache with janitor cleanup
// - cache/sqlite: File-backed cache that survives process restarts
// - cache/redis: Redis-based cache for sharing resources across processes
// - http/standard: Standard library HTTP client tuned for resource fetching
// - logger/logrus: Structured JSON logger built on logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
//
// # Cache Implementations
//
// All three caches share the same TTL contract: a zero TTL stores the entry
// without an expiry.
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "resource:https://example.org/feed.xml", data, 15*time.Minute)
//	value, err := cache.Get(ctx, "resource:https://example.org/feed.xml")
//
// SQLite Cache Example:
//
//	cache, err := sqlite.NewSQLiteCache("resources.db")
//	defer cache.Close()
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	})
//
// # HTTP Client
//
// The HTTP client performs each request exactly once so the loader's timeout
// handling stays exact:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.org/feed.xml")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger()
//	logger.Info("Loaded resource", map[string]interface{}{
//	    "source": "https://example.org/feed.xml",
//	    "format": "rss",
//	})
package infrastructure
