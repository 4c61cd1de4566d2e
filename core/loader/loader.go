// ABOUTME: Fetches remote resources and fills them without blocking the caller
// ABOUTME: One in-flight request per instance; the timeout and the response race for the outcome

package loader

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"syndikit/core/adapter"
	"syndikit/core/domain"
	"syndikit/core/errors"
	"syndikit/core/interfaces"
)

// DefaultCacheTTL is how long fetched bytes stay cached when neither the
// loader nor the request options override it.
const DefaultCacheTTL = 15 * time.Minute

// ResourceLoader retrieves resources over HTTP and fills them through the
// resource adapter. The in-flight request handle is owned by the instance,
// so one loader runs one load at a time and two instances never race on
// each other's state.
type ResourceLoader struct {
	deps     interfaces.Dependencies
	adapter  *adapter.ResourceAdapter
	limiter  *rate.Limiter
	handler  LoadedHandler
	cacheTTL time.Duration

	mu          sync.Mutex
	state       State
	lastOutcome State
	cancel      context.CancelFunc
	cancelled   bool
}

// Option configures a ResourceLoader.
type Option func(*ResourceLoader)

// WithLoadedHandler sets the handler that receives loaded notifications.
func WithLoadedHandler(handler LoadedHandler) Option {
	return func(l *ResourceLoader) {
		l.handler = handler
	}
}

// WithRateLimit makes the loader wait for the given limiter before each
// network fetch.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(l *ResourceLoader) {
		l.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithCacheTTL sets the default time-to-live for cached resource bytes.
func WithCacheTTL(ttl time.Duration) Option {
	return func(l *ResourceLoader) {
		l.cacheTTL = ttl
	}
}

// NewResourceLoader creates a loader using the given dependencies.
func NewResourceLoader(deps interfaces.Dependencies, opts ...Option) *ResourceLoader {
	l := &ResourceLoader{
		deps:     deps,
		adapter:  adapter.NewResourceAdapter(deps),
		cacheTTL: DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the loader's current lifecycle state.
func (l *ResourceLoader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// LastOutcome returns the terminal state of the most recent load, or
// StateIdle when no load has run yet.
func (l *ResourceLoader) LastOutcome() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastOutcome
}

// LoadAsync fetches source in the background and fills res with the result.
// The call returns immediately; the outcome is delivered through the loaded
// handler with the caller's token. A second call while one load is in
// flight returns a state error.
func (l *ResourceLoader) LoadAsync(res domain.Resource, source string, settings domain.LoadSettings, options RequestOptions, token any) error {
	if res == nil {
		return &errors.ArgumentError{Name: "resource", Message: "must not be nil"}
	}
	if strings.TrimSpace(source) == "" {
		return &errors.ArgumentError{Name: "source", Message: "must not be empty"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), settings.EffectiveTimeout())

	l.mu.Lock()
	if l.state == StateLoading {
		l.mu.Unlock()
		cancel()
		return &errors.StateError{Operation: "LoadAsync", State: StateLoading.String()}
	}
	l.state = StateLoading
	l.cancelled = false
	l.cancel = cancel
	l.mu.Unlock()

	l.logDebug("Loading resource", map[string]interface{}{
		"source": source,
		"format": res.Format().Token(),
	})

	go func() {
		defer cancel()
		event, _ := l.execute(ctx, res, source, settings, options, token)
		l.finish(event)
	}()
	return nil
}

// Load fetches source and fills res, blocking until the load finishes. It
// runs the same pipeline as LoadAsync, fires the same single notification
// and reports whether any content was populated.
func (l *ResourceLoader) Load(ctx context.Context, res domain.Resource, source string, settings domain.LoadSettings, options RequestOptions, token any) (bool, error) {
	if res == nil {
		return false, &errors.ArgumentError{Name: "resource", Message: "must not be nil"}
	}
	if strings.TrimSpace(source) == "" {
		return false, &errors.ArgumentError{Name: "source", Message: "must not be empty"}
	}

	loadCtx, cancel := context.WithTimeout(ctx, settings.EffectiveTimeout())
	defer cancel()

	l.mu.Lock()
	if l.state == StateLoading {
		l.mu.Unlock()
		return false, &errors.StateError{Operation: "Load", State: StateLoading.String()}
	}
	l.state = StateLoading
	l.cancelled = false
	l.cancel = cancel
	l.mu.Unlock()

	event, populated := l.execute(loadCtx, res, source, settings, options, token)
	l.finish(event)
	return populated, event.Err
}

// Cancel aborts the in-flight load. The loaded notification still fires,
// with a cancelled outcome and no content. Cancel does nothing when no load
// is in flight, and cannot interrupt a load whose bytes are already being
// parsed.
func (l *ResourceLoader) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StateLoading {
		return
	}
	l.cancelled = true
	if l.cancel != nil {
		l.cancel()
	}
}

// execute runs the fetch-and-fill pipeline and builds the loaded event.
// Cancellation is honored up to the byte-receipt boundary; once parsing has
// begun the response has won the race and the load completes.
func (l *ResourceLoader) execute(ctx context.Context, res domain.Resource, source string, settings domain.LoadSettings, options RequestOptions, token any) (LoadedEvent, bool) {
	data, contentType, err := l.fetch(ctx, source, options)

	l.mu.Lock()
	cancelled := l.cancelled
	l.mu.Unlock()

	populated := false
	outcome := StateCompleted
	switch {
	case cancelled:
		outcome = StateCancelled
	case err != nil && ctx.Err() == context.Canceled:
		outcome = StateCancelled
	case err != nil && ctx.Err() == context.DeadlineExceeded:
		outcome = StateTimedOut
	case err == nil:
		populated, err = l.parse(res, data, contentType, settings)
	}

	event := LoadedEvent{
		Source:  source,
		Options: options,
		Token:   token,
		Outcome: outcome,
		Err:     err,
	}
	if outcome == StateCompleted && err == nil {
		event.Resource = res
	}
	return event, populated
}

// fetch returns the resource bytes and the transport's content type,
// consulting the cache before the network.
func (l *ResourceLoader) fetch(ctx context.Context, source string, options RequestOptions) ([]byte, string, error) {
	if l.limiter != nil {
		if err := l.limiter.Wait(ctx); err != nil {
			return nil, "", err
		}
	}

	key := cacheKey(source)
	if l.deps.Cache != nil && !options.BypassCache {
		if data, err := l.deps.Cache.Get(ctx, key); err == nil && len(data) > 0 {
			l.logDebug("Resource served from cache", map[string]interface{}{"source": source})
			return data, "", nil
		}
	}

	if l.deps.HTTPClient == nil {
		return nil, "", &errors.ArgumentError{Name: "httpClient", Message: "no HTTP client configured"}
	}

	resp, err := l.deps.HTTPClient.Get(ctx, source)
	if err != nil {
		return nil, "", err
	}

	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, "", &errors.FetchError{
			URL:        source,
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
		}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, "", errors.WrapError(err, "failed to read resource body")
	}

	if l.deps.Cache != nil {
		ttl := options.CacheTTL
		if ttl <= 0 {
			ttl = l.cacheTTL
		}
		if err := l.deps.Cache.Set(ctx, key, data, ttl); err != nil {
			l.logDebug("Failed to cache resource", map[string]interface{}{
				"source": source,
				"error":  err.Error(),
			})
		}
	}

	return data, resp.Header("Content-Type"), nil
}

func (l *ResourceLoader) parse(res domain.Resource, data []byte, contentType string, settings domain.LoadSettings) (bool, error) {
	if len(data) == 0 {
		return false, &errors.FormatError{Message: "fetched resource is empty"}
	}
	doc, err := adapter.ParseBytes(data, settings, contentType)
	if err != nil {
		return false, err
	}
	return l.adapter.Load(res, doc, settings)
}

// finish records the outcome, returns the loader to idle and then fires the
// notification, so handlers observe an idle loader.
func (l *ResourceLoader) finish(event LoadedEvent) {
	l.mu.Lock()
	l.lastOutcome = event.Outcome
	l.state = StateIdle
	l.cancel = nil
	l.cancelled = false
	l.mu.Unlock()

	if event.Err != nil {
		l.logError("Resource load failed", map[string]interface{}{
			"source":  event.Source,
			"outcome": event.Outcome.Token(),
			"error":   event.Err.Error(),
		})
	} else {
		l.logDebug("Resource load finished", map[string]interface{}{
			"source":  event.Source,
			"outcome": event.Outcome.Token(),
		})
	}

	if l.handler != nil {
		l.handler(event)
	}
}

func cacheKey(source string) string {
	return "resource:" + source
}

func (l *ResourceLoader) logDebug(msg string, fields map[string]interface{}) {
	if l.deps.Logger != nil {
		l.deps.Logger.Debug(msg, fields)
	}
}

func (l *ResourceLoader) logError(msg string, fields map[string]interface{}) {
	if l.deps.Logger != nil {
		l.deps.Logger.Error(msg, fields)
	}
}
