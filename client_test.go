package syndikit

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syndikit/core/domain"
	"syndikit/core/errors"
	"syndikit/core/interfaces"
	"syndikit/core/loader"
	"syndikit/formats/blogml"
	"syndikit/pkg/config"
)

const sampleBlogML = `<?xml version="1.0" encoding="UTF-8"?>
<blog xmlns="http://www.blogml.com/2006/09/BlogML" root-url="/weblog/">
	<title type="text">Example Weblog</title>
	<posts>
		<post id="p1">
			<title type="text">First post</title>
		</post>
	</posts>
</blog>`

const samplePage = `<!DOCTYPE html>
<html>
<head>
	<title>Example Weblog</title>
	<link rel="alternate" type="application/rss+xml" title="Posts" href="/feed.xml">
	<link rel="alternate" type="application/atom+xml" title="Posts (Atom)" href="https://example.com/atom.xml">
</head>
<body></body>
</html>`

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Example Weblog</title>
<link>https://example.com/</link>
<item>
<title>First post</title>
<link>https://example.com/posts/first</link>
</item>
</channel>
</rss>`

// newTestClient builds a client whose HTTP layer always serves body.
func newTestClient(t *testing.T, body string, options ...Option) *Client {
	t.Helper()

	httpClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: []byte(body)}, nil
		},
	}
	opts := append([]Option{WithHTTPClient(httpClient), WithCache(&mockCache{}), WithQuietMode()}, options...)
	client, err := NewClient(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient()
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, loader.StateIdle, client.LoadState())
	assert.Equal(t, loader.StateIdle, client.LastOutcome())
}

func TestNewClient_RejectsBadConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		option Option
	}{
		{"nil cache", WithCache(nil)},
		{"nil HTTP client", WithHTTPClient(nil)},
		{"nil logger", WithLogger(nil)},
		{"negative cache TTL", WithCacheTTL(-time.Second)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.option)
			require.Error(t, err)
			assert.Nil(t, client)
			assert.True(t, errors.IsArgument(err))
		})
	}
}

func TestClient_Load_PopulatesDocument(t *testing.T) {
	client := newTestClient(t, sampleBlogML)

	doc := blogml.NewDocument()
	populated, err := client.Load(context.Background(), doc, "https://example.com/blogml.xml")
	require.NoError(t, err)

	assert.True(t, populated)
	assert.Equal(t, "Example Weblog", doc.TitleText())
	assert.Equal(t, "/weblog/", doc.RootURL)
	require.Len(t, doc.Posts, 1)
	assert.Equal(t, "p1", doc.Posts[0].ID)
	assert.Equal(t, loader.StateIdle, client.LoadState())
	assert.Equal(t, loader.StateCompleted, client.LastOutcome())
}

func TestClient_Load_WritesFetchedBytesToCache(t *testing.T) {
	var setKey string
	var setTTL time.Duration
	cache := &mockCache{
		setFunc: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
			setKey = key
			setTTL = ttl
			return nil
		},
	}
	client := newTestClient(t, sampleBlogML, WithCache(cache), WithCacheTTL(time.Minute))

	_, err := client.Load(context.Background(), blogml.NewDocument(), "https://example.com/blogml.xml")
	require.NoError(t, err)

	assert.Equal(t, "resource:https://example.com/blogml.xml", setKey)
	assert.Equal(t, time.Minute, setTTL)
}

func TestClient_Load_ServesFromCache(t *testing.T) {
	httpCalls := 0
	httpClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			httpCalls++
			return &mockResponse{statusCode: 200, body: []byte(sampleBlogML)}, nil
		},
	}
	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			return []byte(sampleBlogML), nil
		},
	}
	client, err := NewClient(WithHTTPClient(httpClient), WithCache(cache), WithQuietMode())
	require.NoError(t, err)
	defer client.Close()

	doc := blogml.NewDocument()
	populated, err := client.Load(context.Background(), doc, "https://example.com/blogml.xml")
	require.NoError(t, err)

	assert.True(t, populated)
	assert.Equal(t, 0, httpCalls)
	assert.Equal(t, "Example Weblog", doc.TitleText())
}

func TestClient_Load_BypassCacheOption(t *testing.T) {
	cacheReads := 0
	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			cacheReads++
			return []byte(sampleBlogML), nil
		},
	}
	client := newTestClient(t, sampleBlogML, WithCache(cache))

	_, err := client.Load(context.Background(), blogml.NewDocument(), "https://example.com/blogml.xml", WithBypassCache())
	require.NoError(t, err)

	assert.Equal(t, 0, cacheReads)
}

func TestClient_LoadAsync_NotifiesHandler(t *testing.T) {
	events := make(chan loader.LoadedEvent, 1)
	client := newTestClient(t, sampleBlogML, WithLoadedHandler(func(event loader.LoadedEvent) {
		events <- event
	}))

	doc := blogml.NewDocument()
	require.NoError(t, client.LoadAsync(doc, "https://example.com/blogml.xml",
		WithToken("job-1"),
		WithRequestMetadata(map[string]string{"batch": "nightly"}),
	))

	select {
	case ev := <-events:
		assert.Equal(t, loader.StateCompleted, ev.Outcome)
		assert.NoError(t, ev.Err)
		assert.Same(t, doc, ev.Resource)
		assert.Equal(t, "job-1", ev.Token)
		assert.Equal(t, "nightly", ev.Options.Metadata["batch"])
	case <-time.After(2 * time.Second):
		t.Fatal("loaded handler never fired")
	}

	assert.Equal(t, loader.StateCompleted, client.LastOutcome())
}

func TestClient_CancelLoad_WhenIdleIsNoop(t *testing.T) {
	client := newTestClient(t, sampleBlogML)

	client.CancelLoad()

	assert.Equal(t, loader.StateIdle, client.LoadState())
}

func TestClient_LoadBytes(t *testing.T) {
	client := newTestClient(t, "")

	doc := blogml.NewDocument()
	populated, err := client.LoadBytes(doc, []byte(sampleBlogML))
	require.NoError(t, err)

	assert.True(t, populated)
	assert.Equal(t, "Example Weblog", doc.TitleText())
}

func TestClient_SaveString_RoundTrips(t *testing.T) {
	client := newTestClient(t, "")

	doc := blogml.NewDocument()
	_, err := client.LoadBytes(doc, []byte(sampleBlogML))
	require.NoError(t, err)

	output, err := client.SaveString(doc, domain.SaveSettings{})
	require.NoError(t, err)

	assert.True(t, strings.Contains(output, "Example Weblog"))
	assert.True(t, strings.Contains(output, "http://www.blogml.com/2006/09/BlogML"))

	reloaded := blogml.NewDocument()
	populated, err := client.LoadBytes(reloaded, []byte(output))
	require.NoError(t, err)
	assert.True(t, populated)
	assert.True(t, doc.Equals(reloaded))
}

func TestClient_Discover_ReturnsEndpoints(t *testing.T) {
	client := newTestClient(t, samplePage)

	endpoints, err := client.Discover(context.Background(), "https://example.com/weblog")
	require.NoError(t, err)
	require.Len(t, endpoints, 2)

	assert.Equal(t, "Posts", endpoints[0].Title)
	assert.Equal(t, "https://example.com/feed.xml", endpoints[0].URL)
	assert.Equal(t, "application/rss+xml", endpoints[0].MediaType)
	assert.Equal(t, "rss", endpoints[0].Format)
	assert.Equal(t, "atom", endpoints[1].Format)
}

func TestClient_ImportFeedBytes(t *testing.T) {
	client := newTestClient(t, "")

	doc, err := client.ImportFeedBytes([]byte(sampleFeed))
	require.NoError(t, err)

	assert.Equal(t, "Example Weblog", doc.TitleText())
	assert.Equal(t, "https://example.com/", doc.RootURL)
	require.Len(t, doc.Posts, 1)
	assert.Equal(t, "First post", doc.Posts[0].TitleText())
}

func TestClient_ImportFeeds_SkipsFailures(t *testing.T) {
	httpClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.Contains(url, "broken") {
				return &mockResponse{statusCode: 500}, nil
			}
			return &mockResponse{statusCode: 200, body: []byte(sampleFeed)}, nil
		},
	}
	client, err := NewClient(WithHTTPClient(httpClient), WithCache(&mockCache{}), WithQuietMode())
	require.NoError(t, err)
	defer client.Close()

	docs, err := client.ImportFeeds(context.Background(), []string{
		"https://example.com/feed.xml",
		"https://example.com/broken.xml",
		"https://example.org/feed.xml",
	})
	require.NoError(t, err)

	require.Len(t, docs, 2)
	for _, doc := range docs {
		assert.Equal(t, "Example Weblog", doc.TitleText())
	}
}

func TestClient_ImportFeeds_ArgumentHandling(t *testing.T) {
	client := newTestClient(t, sampleFeed)

	_, err := client.ImportFeeds(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.IsArgument(err))

	docs, err := client.ImportFeeds(context.Background(), []string{})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestClient_ImportFeeds_CancelledContext(t *testing.T) {
	client := newTestClient(t, sampleFeed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ImportFeeds(ctx, []string{"https://example.com/feed.xml"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_ImportFeed_FetchesAndConverts(t *testing.T) {
	client := newTestClient(t, sampleFeed)

	doc, err := client.ImportFeed(context.Background(), "https://example.com/feed.xml")
	require.NoError(t, err)

	assert.Equal(t, "Example Weblog", doc.TitleText())
	require.Len(t, doc.Posts, 1)
}

func TestClient_Close_ClosesCache(t *testing.T) {
	cache := &closableCache{}
	client, err := NewClient(WithCache(cache), WithQuietMode())
	require.NoError(t, err)

	require.NoError(t, client.Close())

	assert.True(t, cache.closed)
}

func TestFromConfig_BuildsMemoryBackend(t *testing.T) {
	cfg := &config.Config{
		Client: config.ClientConfig{UserAgent: "syndikit-test/1.0", TimeoutSeconds: 5},
		Cache: config.CacheConfig{
			Type:   "memory",
			Memory: config.MemoryConfig{DefaultTTLSeconds: 60},
		},
		Log: config.LogConfig{Level: "error"},
	}

	client, err := NewClient(FromConfig(cfg))
	require.NoError(t, err)
	defer client.Close()

	doc := blogml.NewDocument()
	populated, err := client.LoadBytes(doc, []byte(sampleBlogML))
	require.NoError(t, err)
	assert.True(t, populated)
}

func TestFromConfig_RejectsInvalidConfig(t *testing.T) {
	cfg := &config.Config{
		Client: config.ClientConfig{UserAgent: "syndikit-test/1.0", TimeoutSeconds: 5},
		Cache:  config.CacheConfig{Type: "bolt"},
	}

	client, err := NewClient(FromConfig(cfg))
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "cache type")
}

func TestFromConfig_RejectsNilConfig(t *testing.T) {
	client, err := NewClient(FromConfig(nil))
	require.Error(t, err)
	assert.Nil(t, client)
	assert.True(t, errors.IsArgument(err))
}

func TestWithEnvironment_UsesProcessConfiguration(t *testing.T) {
	t.Setenv("USER_AGENT", "syndikit-env/1.0")
	t.Setenv("CACHE_TYPE", "memory")
	t.Setenv("LOG_LEVEL", "error")

	client, err := NewClient(WithEnvironment())
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, loader.StateIdle, client.LoadState())
}

func TestClient_LoadOptions_ApplyPerCall(t *testing.T) {
	var requestedURL string
	httpClient := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			requestedURL = url
			return &mockResponse{
				statusCode: 200,
				body:       []byte(sampleBlogML),
				headers:    map[string]string{"Content-Type": `application/xml; charset="utf-8"`},
			}, nil
		},
	}
	client, err := NewClient(WithHTTPClient(httpClient), WithCache(&mockCache{}), WithQuietMode())
	require.NoError(t, err)
	defer client.Close()

	doc := blogml.NewDocument()
	populated, err := client.Load(context.Background(), doc, "https://example.com/blogml.xml",
		WithLoadTimeout(5*time.Second),
		WithEncoding("utf-8"),
	)
	require.NoError(t, err)

	assert.True(t, populated)
	assert.Equal(t, "https://example.com/blogml.xml", requestedURL)
}
