// ABOUTME: Service interfaces for the syndication core
// ABOUTME: Defines contracts for services used throughout the library

package interfaces

import (
	"context"

	"syndikit/core/domain"
)

// DiscoveredEndpoint describes a syndication endpoint advertised by a web page
type DiscoveredEndpoint struct {
	Title     string
	URL       string // Absolute endpoint URL
	MediaType string
	Format    domain.ContentFormat
}

// EndpointDiscoverer locates syndication endpoints advertised by web pages
type EndpointDiscoverer interface {
	Discover(ctx context.Context, pageURL string) ([]DiscoveredEndpoint, error)
}
