// ABOUTME: Configuration options for the syndikit library client
// ABOUTME: Provides functional options for backends plus per-call load options

package syndikit

import (
	"time"

	"golang.org/x/time/rate"

	"syndikit/core/domain"
	coreerrors "syndikit/core/errors"
	"syndikit/core/interfaces"
	"syndikit/core/loader"
	"syndikit/infrastructure/cache/memory"
	"syndikit/infrastructure/cache/redis"
	"syndikit/infrastructure/cache/sqlite"
	"syndikit/infrastructure/http/standard"
	logruslogger "syndikit/infrastructure/logger/logrus"
	"syndikit/pkg/config"
)

// Config holds the configuration for the client
type Config struct {
	// Cache stores fetched resource bytes between loads
	Cache interfaces.Cache

	// HTTPClient performs resource fetches
	HTTPClient interfaces.HTTPClient

	// Logger receives structured load and discovery events
	Logger interfaces.Logger

	// UserAgent overrides the HTTP client's user agent when set
	UserAgent string

	// CacheTTL is how long fetched resources stay cached. Zero keeps them
	// until the backend evicts.
	CacheTTL time.Duration

	// RateLimit caps outbound fetches per second. Zero means unlimited.
	RateLimit rate.Limit

	// RateBurst is the burst size used with RateLimit
	RateBurst int

	// LoadedHandler is invoked whenever an asynchronous load settles
	LoadedHandler loader.LoadedHandler
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithUserAgent sets the user agent sent with resource fetches
func WithUserAgent(userAgent string) Option {
	return func(c *Config) error {
		c.UserAgent = userAgent
		return nil
	}
}

// WithCacheTTL sets how long fetched resources stay cached
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		c.CacheTTL = ttl
		return nil
	}
}

// WithRateLimit caps outbound fetches at limit per second with the given burst
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Config) error {
		c.RateLimit = limit
		c.RateBurst = burst
		return nil
	}
}

// WithLoadedHandler sets the handler invoked when asynchronous loads settle
func WithLoadedHandler(handler loader.LoadedHandler) Option {
	return func(c *Config) error {
		c.LoadedHandler = handler
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = &quietLogger{}
		return nil
	}
}

// FromConfig builds the client's backends from a validated configuration,
// typically one produced by config.LoadFromEnv.
func FromConfig(cfg *config.Config) Option {
	return func(c *Config) error {
		if cfg == nil {
			return &coreerrors.ArgumentError{Name: "cfg", Message: "must not be nil"}
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		c.HTTPClient = standard.NewStandardHTTPClient(time.Duration(cfg.Client.TimeoutSeconds) * time.Second)
		c.UserAgent = cfg.Client.UserAgent
		c.Logger = logruslogger.NewLoggerWithLevel(cfg.Log.Level)

		switch cfg.Cache.Type {
		case "memory":
			c.Cache = memory.NewMemoryCache()
			c.CacheTTL = time.Duration(cfg.Cache.Memory.DefaultTTLSeconds) * time.Second
		case "sqlite":
			cache, err := sqlite.NewSQLiteCacheWithLogger(cfg.Cache.SQLite.Path, c.Logger)
			if err != nil {
				return err
			}
			c.Cache = cache
		case "redis":
			cache, err := redis.NewRedisCache(cfg.Cache.Redis)
			if err != nil {
				return err
			}
			c.Cache = cache
		}

		return nil
	}
}

// WithEnvironment reads configuration from environment variables and builds
// the backends it names
func WithEnvironment() Option {
	return func(c *Config) error {
		cfg, err := config.LoadFromEnv()
		if err != nil {
			return err
		}
		return FromConfig(cfg)(c)
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Cache:      memory.NewMemoryCache(),
		HTTPClient: standard.NewStandardHTTPClient(domain.DefaultTimeout),
		Logger:     logruslogger.NewLogger(),
		CacheTTL:   loader.DefaultCacheTTL,
	}
}

// quietLogger discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// loadConfig collects per-call load options
type loadConfig struct {
	settings domain.LoadSettings
	request  loader.RequestOptions
	token    any
}

func newLoadConfig() loadConfig {
	return loadConfig{settings: domain.DefaultLoadSettings()}
}

// LoadOption is a functional option for a single load call
type LoadOption func(*loadConfig)

// WithLoadSettings replaces the load settings wholesale
func WithLoadSettings(settings domain.LoadSettings) LoadOption {
	return func(lc *loadConfig) {
		lc.settings = settings
	}
}

// WithLoadTimeout bounds the fetch for this load
func WithLoadTimeout(timeout time.Duration) LoadOption {
	return func(lc *loadConfig) {
		lc.settings.Timeout = timeout
	}
}

// WithEncoding names the character encoding used to decode fetched bytes,
// overriding auto-detection
func WithEncoding(name string) LoadOption {
	return func(lc *loadConfig) {
		lc.settings.CharacterEncoding = name
	}
}

// WithExtensions lists the extension types recognized during this load
func WithExtensions(factories ...domain.ExtensionFactory) LoadOption {
	return func(lc *loadConfig) {
		lc.settings.RecognizedExtensions = factories
	}
}

// WithBypassCache forces a fresh fetch for this load
func WithBypassCache() LoadOption {
	return func(lc *loadConfig) {
		lc.request.BypassCache = true
	}
}

// WithRequestCacheTTL overrides the client cache TTL for this load
func WithRequestCacheTTL(ttl time.Duration) LoadOption {
	return func(lc *loadConfig) {
		lc.request.CacheTTL = ttl
	}
}

// WithRequestMetadata carries caller-defined values through to the loaded
// event unmodified
func WithRequestMetadata(metadata map[string]string) LoadOption {
	return func(lc *loadConfig) {
		lc.request.Metadata = metadata
	}
}

// WithToken attaches an opaque token echoed back in the loaded event
func WithToken(token any) LoadOption {
	return func(lc *loadConfig) {
		lc.token = token
	}
}
