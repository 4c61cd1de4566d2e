// Package syndikit loads, parses, and serializes extensible syndication
// documents. It wraps the core engine with a single Client so callers can
// fetch resources, discover endpoints, and import feeds without wiring the
// underlying services themselves.
//
// # Quick Start
//
//	client, err := syndikit.NewClient()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	doc := blogml.NewDocument()
//	populated, err := client.Load(ctx, doc, "https://example.org/blogml.xml")
//
// # Backends
//
// The client defaults to an in-memory cache, a plain HTTP client, and a JSON
// logger. Each can be replaced through options:
//
//	client, err := syndikit.NewClient(
//	    syndikit.WithCacheTTL(time.Hour),
//	    syndikit.WithUserAgent("Aggregator/2.0"),
//	    syndikit.WithRateLimit(rate.Every(time.Second), 1),
//	)
//
// Backends can also be chosen from the environment, using the variables
// documented in pkg/config:
//
//	client, err := syndikit.NewClient(syndikit.WithEnvironment())
//
// # Asynchronous Loading
//
// LoadAsync starts a background load and reports the outcome through the
// configured handler. One load runs at a time per client:
//
//	client, _ := syndikit.NewClient(
//	    syndikit.WithLoadedHandler(func(event loader.LoadedEvent) {
//	        if event.Outcome == loader.StateCompleted && event.Err == nil {
//	            // event.Resource is the populated document
//	        }
//	    }),
//	)
//	err := client.LoadAsync(doc, "https://example.org/blogml.xml")
//
// # Discovery and Import
//
// Discover scans an HTML page for advertised endpoints; ImportFeed converts
// an RSS or Atom feed into a BlogML document:
//
//	endpoints, err := client.Discover(ctx, "https://example.org/")
//	imported, err := client.ImportFeed(ctx, endpoints[0].URL)
//
// ImportFeeds imports several feeds concurrently, skipping the ones that
// fail:
//
//	docs, err := client.ImportFeeds(ctx, []string{
//	    "https://example.org/feed.xml",
//	    "https://example.com/atom.xml",
//	})
package syndikit
