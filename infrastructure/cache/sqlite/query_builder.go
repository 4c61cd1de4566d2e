// ABOUTME: Safe SQL statement builder for the SQLite resource cache
// ABOUTME: Validates identifiers and parameterizes every value position

package sqlite

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Logger interface - minimal interface to avoid circular dependencies
type Logger interface {
	Warn(msg string, fields map[string]interface{})
}

// tableName is the single table the resource cache operates on.
const tableName = "resource_cache"

// QueryBuilder provides a safe way to build SQL statements with automatic parameterization
type QueryBuilder struct {
	query  string
	params []interface{}
}

// Table and column name validation - only alphanumeric, underscore allowed
var (
	safeNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	// Maximum lengths to prevent DoS. Keys embed resource URLs, which run
	// longer than typical cache keys, and values hold whole serialized
	// syndication documents.
	maxKeyLength   = 512
	maxValueLength = 8 * 1024 * 1024 // 8MB
)

// NewQueryBuilder creates a new query builder instance
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		params: make([]interface{}, 0),
	}
}

// validateName validates table/column names to prevent SQL injection
func (qb *QueryBuilder) validateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}

	if !safeNamePattern.MatchString(name) {
		return fmt.Errorf("invalid name: %s (only alphanumeric and underscore allowed)", name)
	}

	// Prevent extremely long names
	if len(name) > 64 {
		return fmt.Errorf("name too long: %s (max 64 characters)", name)
	}

	return nil
}

// Select builds a SELECT statement
func (qb *QueryBuilder) Select(columns ...string) *QueryBuilder {
	// Fall back to * when any column name fails validation
	for _, col := range columns {
		if err := qb.validateName(col); err != nil {
			qb.query = "SELECT * "
			return qb
		}
	}

	if len(columns) == 0 {
		qb.query = "SELECT * "
	} else {
		qb.query = "SELECT " + strings.Join(columns, ", ") + " "
	}

	return qb
}

// From adds the FROM clause
func (qb *QueryBuilder) From(table string) *QueryBuilder {
	if err := qb.validateName(table); err != nil {
		return qb
	}

	qb.query += "FROM " + table + " "
	return qb
}

// Where adds a parameterized condition, ANDed onto any existing WHERE clause
func (qb *QueryBuilder) Where(column string, operator string, value interface{}) *QueryBuilder {
	if err := qb.validateName(column); err != nil {
		return qb
	}

	// Unknown operators collapse to equality
	allowedOperators := map[string]bool{
		"=":  true,
		"!=": true,
		">":  true,
		"<":  true,
		">=": true,
		"<=": true,
	}

	if !allowedOperators[operator] {
		operator = "="
	}

	if strings.Contains(qb.query, "WHERE") {
		qb.query += "AND "
	} else {
		qb.query += "WHERE "
	}

	qb.query += column + " " + operator + " ? "
	qb.params = append(qb.params, value)

	return qb
}

// WhereUnexpired adds a grouped condition matching rows whose column is zero,
// meaning the entry was stored without an expiry, or still ahead of a bound
// instant. Binds one parameter.
func (qb *QueryBuilder) WhereUnexpired(column string) *QueryBuilder {
	if err := qb.validateName(column); err != nil {
		return qb
	}

	if strings.Contains(qb.query, "WHERE") {
		qb.query += "AND "
	} else {
		qb.query += "WHERE "
	}

	qb.query += "(" + column + " = 0 OR " + column + " > ?) "
	qb.params = append(qb.params, nil)

	return qb
}

// InsertOrReplace builds an INSERT OR REPLACE statement
func (qb *QueryBuilder) InsertOrReplace(table string) *QueryBuilder {
	if err := qb.validateName(table); err != nil {
		return qb
	}

	qb.query = "INSERT OR REPLACE INTO " + table + " "
	return qb
}

// Values adds the VALUES clause, dropping any column that fails validation
func (qb *QueryBuilder) Values(columns []string, values []interface{}) *QueryBuilder {
	if len(columns) != len(values) {
		return qb
	}

	validColumns := make([]string, 0, len(columns))
	validValues := make([]interface{}, 0, len(values))

	for i, col := range columns {
		if err := qb.validateName(col); err == nil {
			validColumns = append(validColumns, col)
			validValues = append(validValues, values[i])
		}
	}

	if len(validColumns) == 0 {
		return qb
	}

	placeholders := make([]string, len(validColumns))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	qb.query += "(" + strings.Join(validColumns, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
	qb.params = append(qb.params, validValues...)

	return qb
}

// Delete builds a DELETE statement
func (qb *QueryBuilder) Delete(table string) *QueryBuilder {
	if err := qb.validateName(table); err != nil {
		return qb
	}

	qb.query = "DELETE FROM " + table + " "
	return qb
}

// Build returns the built statement and its parameters
func (qb *QueryBuilder) Build() (string, []interface{}) {
	return strings.TrimSpace(qb.query), qb.params
}

// ValidateKey validates a cache key before it reaches a statement. Suspicious
// patterns are logged rather than rejected, since parameterization already
// neutralizes them.
func ValidateKey(key string, logger Logger) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if len(key) > maxKeyLength {
		return fmt.Errorf("key too long: max %d characters", maxKeyLength)
	}

	// Null bytes confuse both SQLite and callers comparing keys
	if strings.Contains(key, "\x00") {
		return errors.New("key cannot contain null bytes")
	}

	suspiciousPatterns := []string{
		"--",
		"/*",
		"*/",
		";",
		"'",
		"\"",
		"\\",
		"\n",
		"\r",
		"\t",
	}

	for _, pattern := range suspiciousPatterns {
		if strings.Contains(key, pattern) {
			if logger != nil {
				logger.Warn("Suspicious pattern detected in cache key", map[string]interface{}{
					"pattern":     pattern,
					"key_length":  len(key),
					"key_preview": truncateKey(key),
				})
			}
		}
	}

	return nil
}

// truncateKey returns a safe preview of the key for logging
func truncateKey(key string) string {
	const maxPreview = 50
	if len(key) <= maxPreview {
		return key
	}
	return key[:maxPreview] + "..."
}

// ValidateValue validates a cache value before storage
func ValidateValue(value []byte) error {
	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}

	if len(value) > maxValueLength {
		return fmt.Errorf("value too large: max %d bytes", maxValueLength)
	}

	return nil
}

// CacheQueryBuilder provides the prepared statements for resource cache operations
type CacheQueryBuilder struct{}

// NewCacheQueryBuilder creates a cache-specific query builder
func NewCacheQueryBuilder() *CacheQueryBuilder {
	return &CacheQueryBuilder{}
}

// GetQuery builds the lookup statement. Rows with a zero expiry never expire.
// Binds the key and the current time in seconds.
func (cq *CacheQueryBuilder) GetQuery() (string, int) {
	qb := NewQueryBuilder()
	qb.Select("value", "expiry").
		From(tableName).
		Where("key", "=", nil).
		WhereUnexpired("expiry")

	query, _ := qb.Build()
	return query, 2
}

// SetQuery builds the upsert statement. Binds key, value and expiry.
func (cq *CacheQueryBuilder) SetQuery() (string, int) {
	qb := NewQueryBuilder()
	qb.InsertOrReplace(tableName).
		Values([]string{"key", "value", "expiry"}, []interface{}{nil, nil, nil})

	query, _ := qb.Build()
	return query, 3
}

// DeleteQuery builds the removal statement. Binds the key.
func (cq *CacheQueryBuilder) DeleteQuery() (string, int) {
	qb := NewQueryBuilder()
	qb.Delete(tableName).Where("key", "=", nil)

	query, _ := qb.Build()
	return query, 1
}

// CleanupQuery builds the expired-row sweep. Rows with a zero expiry are kept.
// Binds zero and the current time in seconds.
func (cq *CacheQueryBuilder) CleanupQuery() (string, int) {
	qb := NewQueryBuilder()
	qb.Delete(tableName).
		Where("expiry", ">", nil).
		Where("expiry", "<=", nil)

	query, _ := qb.Build()
	return query, 2
}

// ClearQuery builds the statement that empties the cache. Binds nothing.
func (cq *CacheQueryBuilder) ClearQuery() (string, int) {
	qb := NewQueryBuilder()
	qb.Delete(tableName)

	query, _ := qb.Build()
	return query, 0
}
