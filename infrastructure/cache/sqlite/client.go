// ABOUTME: SQLite-backed resource cache that survives process restarts
// ABOUTME: Stores fetched syndication payloads with optional expiry

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"syndikit/core/errors"
)

const (
	defaultDatabaseFile = "resources.db"
	cleanupInterval     = 5 * time.Minute
)

// Client implements the Cache interface on top of a SQLite database file.
// All statements are prepared through the CacheQueryBuilder at construction.
type Client struct {
	db        *sql.DB
	filePath  string
	logger    Logger
	done      chan struct{}
	closeOnce sync.Once

	getQuery     string
	setQuery     string
	deleteQuery  string
	cleanupQuery string
	clearQuery   string
}

// NewSQLiteCache creates a new SQLite cache client
func NewSQLiteCache(filePath string) (*Client, error) {
	return NewSQLiteCacheWithLogger(filePath, nil)
}

// NewSQLiteCacheWithLogger creates a new SQLite cache client that reports
// suspicious keys through the given logger. A nil logger disables reporting.
func NewSQLiteCacheWithLogger(filePath string, logger Logger) (*Client, error) {
	if filePath == "" {
		filePath = defaultDatabaseFile
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
		logger:   logger,
		done:     make(chan struct{}),
	}

	queries := NewCacheQueryBuilder()
	client.getQuery, _ = queries.GetQuery()
	client.setQuery, _ = queries.SetQuery()
	client.deleteQuery, _ = queries.DeleteQuery()
	client.cleanupQuery, _ = queries.CleanupQuery()
	client.clearQuery, _ = queries.ClearQuery()

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go client.cleanupRoutine()

	return client, nil
}

// initSchema creates the cache table if it doesn't exist
func (c *Client) initSchema() error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_resource_expiry ON %s(expiry);
	`, tableName, tableName)

	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value from the cache. Expired entries read as missing.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key, c.logger); err != nil {
		return nil, err
	}

	var value []byte
	var expiry int64

	err := c.db.QueryRowContext(ctx, c.getQuery, key, time.Now().Unix()).Scan(&value, &expiry)

	if err == sql.ErrNoRows {
		return nil, &errors.NotFoundError{Resource: "cache key", ID: key}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value in the cache. A zero or negative ttl stores the entry
// without an expiry, so it stays until deleted.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ValidateKey(key, c.logger); err != nil {
		return err
	}

	if err := ValidateValue(value); err != nil {
		return err
	}

	var expiry int64
	if ttl > 0 {
		expiry = time.Now().Add(ttl).Unix()
	}

	_, err := c.db.ExecContext(ctx, c.setQuery, key, value, expiry)
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := ValidateKey(key, c.logger); err != nil {
		return err
	}

	_, err := c.db.ExecContext(ctx, c.deleteQuery, key)

	if err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// Clear removes all values from the cache
func (c *Client) Clear(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, c.clearQuery)

	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	return nil
}

// cleanupRoutine periodically removes expired entries until Close is called
func (c *Client) cleanupRoutine() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup removes expired entries, leaving zero-expiry rows in place
func (c *Client) cleanup() {
	_, _ = c.db.Exec(c.cleanupQuery, 0, time.Now().Unix())
}

// Close stops the cleanup routine and closes the database connection
func (c *Client) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return c.db.Close()
}

// Stats returns cache statistics
func (c *Client) Stats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var count int
	err := c.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", tableName)).Scan(&count)
	if err != nil {
		return nil, err
	}
	stats["total_entries"] = count

	var expired int
	err = c.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE expiry > 0 AND expiry <= ?", tableName), time.Now().Unix()).Scan(&expired)
	if err != nil {
		return nil, err
	}
	stats["expired_entries"] = expired

	var permanent int
	err = c.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE expiry = 0", tableName)).Scan(&permanent)
	if err != nil {
		return nil, err
	}
	stats["permanent_entries"] = permanent

	// Database file size
	var pageCount, pageSize int
	err = c.db.QueryRow("PRAGMA page_count").Scan(&pageCount)
	if err == nil {
		err = c.db.QueryRow("PRAGMA page_size").Scan(&pageSize)
		if err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}

	stats["file_path"] = c.filePath

	return stats, nil
}
