// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the syndication core

package interfaces

// Dependencies holds all external dependencies required by the syndication core
type Dependencies struct {
	// Cache provides caching for fetched resource documents
	Cache Cache

	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
