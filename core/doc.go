// Package core contains the serialization engine of the framework.
// It is designed to be format-agnostic and can be used independently
// of any transport or storage concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Entity traits, common fields, text content, approval status
// - codec: Static enumeration tables mapping values to wire tokens
// - compare: Equality, ordering, and hashing over canonical serialization
// - adapter: Fills entities from parsed XML and writes them back out
// - loader: Asynchronous resource loading with cancellation and timeouts
// - discovery: Endpoint autodiscovery from HTML pages
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No transport framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "syndikit/core/domain"
//	    "syndikit/core/interfaces"
//	    "syndikit/core/loader"
//	    "syndikit/formats/blogml"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create a loader and fetch a document
//	resourceLoader := loader.NewResourceLoader(deps)
//	doc := blogml.NewDocument()
//	populated, err := resourceLoader.Load(ctx, doc, "https://example.org/blogml.xml",
//	    domain.DefaultLoadSettings(), loader.RequestOptions{}, nil)
package core
