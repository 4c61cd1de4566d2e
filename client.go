// ABOUTME: Main client for the syndikit library tying loader, discovery, and import together
// ABOUTME: Offers a clean entry point for using core functionality with pluggable backends

package syndikit

import (
	"context"
	"errors"
	"io"
	"sync"

	"syndikit/core/adapter"
	"syndikit/core/discovery"
	"syndikit/core/domain"
	coreerrors "syndikit/core/errors"
	"syndikit/core/interfaces"
	"syndikit/core/loader"
	"syndikit/formats/blogml"
	"syndikit/formats/feedimport"
)

// Client is the main entry point for the syndikit library
type Client struct {
	loader    *loader.ResourceLoader
	discovery *discovery.DiscoveryService
	importer  *feedimport.Importer
	adapter   *adapter.ResourceAdapter

	deps   interfaces.Dependencies
	config Config
}

// Endpoint describes a syndication endpoint advertised by a web page.
// Format carries the wire token of the detected vocabulary (rss, atom,
// opml, apml).
type Endpoint struct {
	Title     string
	URL       string
	MediaType string
	Format    string
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	if config.UserAgent != "" {
		if c, ok := config.HTTPClient.(interface{ SetUserAgent(string) }); ok {
			c.SetUserAgent(config.UserAgent)
		}
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Cache:      config.Cache,
		Logger:     config.Logger,
	}

	loaderOpts := []loader.Option{loader.WithCacheTTL(config.CacheTTL)}
	if config.LoadedHandler != nil {
		loaderOpts = append(loaderOpts, loader.WithLoadedHandler(config.LoadedHandler))
	}
	if config.RateLimit > 0 {
		loaderOpts = append(loaderOpts, loader.WithRateLimit(config.RateLimit, config.RateBurst))
	}

	return &Client{
		loader:    loader.NewResourceLoader(deps, loaderOpts...),
		discovery: discovery.NewDiscoveryService(deps),
		importer:  feedimport.NewImporter(deps),
		adapter:   adapter.NewResourceAdapter(deps),
		deps:      deps,
		config:    config,
	}, nil
}

// Close releases the configured cache when it holds external resources,
// such as a SQLite file or a Redis connection.
func (c *Client) Close() error {
	if closer, ok := c.config.Cache.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Load fetches a resource from source and populates res, blocking until the
// load settles. It returns whether any content was populated.
func (c *Client) Load(ctx context.Context, res domain.Resource, source string, opts ...LoadOption) (bool, error) {
	lc := newLoadConfig()
	for _, opt := range opts {
		opt(&lc)
	}

	return c.loader.Load(ctx, res, source, lc.settings, lc.request, lc.token)
}

// LoadAsync starts a background load of res from source. Completion is
// reported through the handler configured with WithLoadedHandler.
func (c *Client) LoadAsync(res domain.Resource, source string, opts ...LoadOption) error {
	lc := newLoadConfig()
	for _, opt := range opts {
		opt(&lc)
	}

	return c.loader.LoadAsync(res, source, lc.settings, lc.request, lc.token)
}

// CancelLoad requests cancellation of the load in flight, if any
func (c *Client) CancelLoad() {
	c.loader.Cancel()
}

// LoadState reports whether a load is currently in flight
func (c *Client) LoadState() loader.State {
	return c.loader.State()
}

// LastOutcome reports how the most recent load settled
func (c *Client) LastOutcome() loader.State {
	return c.loader.LastOutcome()
}

// LoadBytes populates res from already-fetched bytes
func (c *Client) LoadBytes(res domain.Resource, data []byte, opts ...LoadOption) (bool, error) {
	lc := newLoadConfig()
	for _, opt := range opts {
		opt(&lc)
	}

	return c.adapter.LoadBytes(res, data, lc.settings)
}

// Save serializes res to w
func (c *Client) Save(res domain.Resource, w io.Writer, settings domain.SaveSettings) error {
	return c.adapter.Save(res, w, settings)
}

// SaveString serializes res and returns the document text
func (c *Client) SaveString(res domain.Resource, settings domain.SaveSettings) (string, error) {
	return c.adapter.SaveString(res, settings)
}

// Discover scans the page at pageURL for advertised syndication endpoints
func (c *Client) Discover(ctx context.Context, pageURL string) ([]*Endpoint, error) {
	found, err := c.discovery.Discover(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	endpoints := make([]*Endpoint, len(found))
	for i, ep := range found {
		endpoints[i] = &Endpoint{
			Title:     ep.Title,
			URL:       ep.URL,
			MediaType: ep.MediaType,
			Format:    ep.Format.Token(),
		}
	}

	return endpoints, nil
}

// ImportFeed fetches an RSS or Atom feed and converts it to a BlogML document
func (c *Client) ImportFeed(ctx context.Context, feedURL string) (*blogml.Document, error) {
	return c.importer.ImportURL(ctx, feedURL)
}

// ImportFeedBytes converts already-fetched RSS or Atom content to a BlogML document
func (c *Client) ImportFeedBytes(data []byte) (*blogml.Document, error) {
	return c.importer.Import(data)
}

// ImportFeeds imports multiple feeds concurrently. Documents arrive in
// completion order; feeds that fail to import are logged and skipped. A
// cancelled context surfaces as an error alongside the documents imported
// before cancellation.
func (c *Client) ImportFeeds(ctx context.Context, feedURLs []string) ([]*blogml.Document, error) {
	if feedURLs == nil {
		return nil, &coreerrors.ArgumentError{Name: "feedURLs", Message: "must not be nil"}
	}
	if len(feedURLs) == 0 {
		return []*blogml.Document{}, nil
	}

	type importResult struct {
		doc *blogml.Document
		err error
		url string
	}

	resultsChan := make(chan importResult, len(feedURLs))

	// Limit concurrent fetches to 10
	semaphore := make(chan struct{}, 10)

	var wg sync.WaitGroup
	for _, url := range feedURLs {
		wg.Add(1)
		go func(feedURL string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				resultsChan <- importResult{url: feedURL, err: ctx.Err()}
				return
			default:
			}

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			doc, err := c.importer.ImportURL(ctx, feedURL)
			resultsChan <- importResult{
				doc: doc,
				err: err,
				url: feedURL,
			}
		}(url)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	docs := make([]*blogml.Document, 0, len(feedURLs))
	var firstError error

	for result := range resultsChan {
		if result.err != nil {
			if c.deps.Logger != nil {
				c.deps.Logger.Error("Failed to import feed", map[string]interface{}{
					"url":   result.url,
					"error": result.err.Error(),
				})
			}
			if firstError == nil && errors.Is(result.err, context.Canceled) {
				firstError = result.err
			}
			continue
		}
		if result.doc != nil {
			docs = append(docs, result.doc)
		}
	}

	if firstError != nil {
		return docs, firstError
	}

	return docs, nil
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.HTTPClient == nil {
		return &coreerrors.ArgumentError{Name: "HTTPClient", Message: "HTTP client is required"}
	}

	if config.Cache == nil {
		return &coreerrors.ArgumentError{Name: "Cache", Message: "cache is required"}
	}

	if config.Logger == nil {
		return &coreerrors.ArgumentError{Name: "Logger", Message: "logger is required"}
	}

	if config.CacheTTL < 0 {
		return &coreerrors.ArgumentError{Name: "CacheTTL", Message: "cache TTL cannot be negative"}
	}

	return nil
}
