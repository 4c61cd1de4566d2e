package config

import (
	"os"
	"testing"
)

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name            string
		envVars         map[string]string
		expectedAgent   string
		expectedTimeout int
	}{
		{
			name:            "default user agent when USER_AGENT not set",
			envVars:         map[string]string{},
			expectedAgent:   "syndikit/1.0",
			expectedTimeout: 30,
		},
		{
			name:            "uses USER_AGENT env var when set",
			envVars:         map[string]string{"USER_AGENT": "Aggregator/2.0"},
			expectedAgent:   "Aggregator/2.0",
			expectedTimeout: 30,
		},
		{
			name:            "default timeout when HTTP_TIMEOUT not set",
			envVars:         map[string]string{},
			expectedAgent:   "syndikit/1.0",
			expectedTimeout: 30,
		},
		{
			name:            "uses HTTP_TIMEOUT env var when set",
			envVars:         map[string]string{"HTTP_TIMEOUT": "120"},
			expectedAgent:   "syndikit/1.0",
			expectedTimeout: 120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}

			if cfg.Client.UserAgent != tt.expectedAgent {
				t.Errorf("UserAgent = %v, want %v", cfg.Client.UserAgent, tt.expectedAgent)
			}

			if cfg.Client.TimeoutSeconds != tt.expectedTimeout {
				t.Errorf("TimeoutSeconds = %v, want %v", cfg.Client.TimeoutSeconds, tt.expectedTimeout)
			}
		})
	}
}

func TestLoadFromEnv_CacheDefaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Cache.Type != "memory" {
		t.Errorf("Cache.Type = %v, want memory", cfg.Cache.Type)
	}
	if cfg.Cache.Redis.Address != "localhost:6379" {
		t.Errorf("Redis.Address = %v, want localhost:6379", cfg.Cache.Redis.Address)
	}
	if cfg.Cache.SQLite.Path != "resources.db" {
		t.Errorf("SQLite.Path = %v, want resources.db", cfg.Cache.SQLite.Path)
	}
	if cfg.Cache.Memory.DefaultTTLSeconds != 900 {
		t.Errorf("Memory.DefaultTTLSeconds = %v, want 900", cfg.Cache.Memory.DefaultTTLSeconds)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %v, want info", cfg.Log.Level)
	}
}

func TestLoadFromEnv_SelectsBackendFromEnv(t *testing.T) {
	os.Clearenv()
	os.Setenv("CACHE_TYPE", "redis")
	os.Setenv("REDIS_ADDRESS", "redis.internal:6380")
	os.Setenv("REDIS_DB", "3")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Cache.Type != "redis" {
		t.Errorf("Cache.Type = %v, want redis", cfg.Cache.Type)
	}
	if cfg.Cache.Redis.Address != "redis.internal:6380" {
		t.Errorf("Redis.Address = %v, want redis.internal:6380", cfg.Cache.Redis.Address)
	}
	if cfg.Cache.Redis.DB != 3 {
		t.Errorf("Redis.DB = %v, want 3", cfg.Cache.Redis.DB)
	}
}

func TestLoadFromEnv_InvalidTimeout(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_TIMEOUT", "not-a-number")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	// Should use default value when parsing fails
	if cfg.Client.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %v, want %v (default)", cfg.Client.TimeoutSeconds, 30)
	}
}

func TestConfig_Validate(t *testing.T) {
	validClient := ClientConfig{
		UserAgent:      "syndikit/1.0",
		TimeoutSeconds: 30,
	}

	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config",
			config: Config{
				Client: validClient,
				Cache:  CacheConfig{Type: "memory"},
			},
			wantErr: false,
		},
		{
			name: "empty user agent",
			config: Config{
				Client: ClientConfig{UserAgent: "", TimeoutSeconds: 30},
				Cache:  CacheConfig{Type: "memory"},
			},
			wantErr: true,
			errMsg:  "user agent cannot be empty",
		},
		{
			name: "timeout less than 1",
			config: Config{
				Client: ClientConfig{UserAgent: "syndikit/1.0", TimeoutSeconds: 0},
				Cache:  CacheConfig{Type: "memory"},
			},
			wantErr: true,
			errMsg:  "http timeout must be at least 1 second",
		},
		{
			name: "invalid cache type",
			config: Config{
				Client: validClient,
				Cache:  CacheConfig{Type: "invalid"},
			},
			wantErr: true,
			errMsg:  "cache type must be 'memory', 'sqlite' or 'redis'",
		},
		{
			name: "redis type with empty address",
			config: Config{
				Client: validClient,
				Cache: CacheConfig{
					Type:  "redis",
					Redis: RedisConfig{Address: ""},
				},
			},
			wantErr: true,
			errMsg:  "redis address cannot be empty when using redis cache",
		},
		{
			name: "sqlite type with empty path",
			config: Config{
				Client: validClient,
				Cache: CacheConfig{
					Type:   "sqlite",
					SQLite: SQLiteConfig{Path: ""},
				},
			},
			wantErr: true,
			errMsg:  "sqlite path cannot be empty when using sqlite cache",
		},
		{
			name: "negative memory ttl",
			config: Config{
				Client: validClient,
				Cache: CacheConfig{
					Type:   "memory",
					Memory: MemoryConfig{DefaultTTLSeconds: -1},
				},
			},
			wantErr: true,
			errMsg:  "memory cache ttl cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && tt.errMsg != "" && err.Error() != tt.errMsg {
				t.Errorf("Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}
