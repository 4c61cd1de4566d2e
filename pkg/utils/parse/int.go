// ABOUTME: Utility functions for parsing numeric attribute values
// ABOUTME: Provides safe parsing with default values

package parse

import "strconv"

// IntOrZero safely parses an integer from a string, returning 0 if parsing fails
func IntOrZero(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// Int64OrZero safely parses an int64 from a string, returning 0 if parsing fails
func Int64OrZero(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

// BoolOrFalse safely parses a boolean from a string, returning false if parsing fails
func BoolOrFalse(s string) bool {
	v, _ := strconv.ParseBool(s)
	return v
}
