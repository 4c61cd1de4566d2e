// ABOUTME: Discovery service locates syndication endpoints advertised by web pages
// ABOUTME: Scans link elements for alternate representations and APML meta links

package discovery

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"syndikit/core/domain"
	"syndikit/core/errors"
	"syndikit/core/interfaces"
)

// discoveryCacheTTL bounds how long discovered endpoints are reused before
// the page is scanned again.
const discoveryCacheTTL = time.Hour

// mediaTypeFormats maps advertised link types to content formats. Types not
// listed here are not syndication endpoints and are skipped.
var mediaTypeFormats = map[string]domain.ContentFormat{
	"application/rss+xml":  domain.FormatRSS,
	"application/atom+xml": domain.FormatAtom,
	"application/opml+xml": domain.FormatOPML,
	"text/x-opml":          domain.FormatOPML,
	"application/apml+xml": domain.FormatAPML,
}

// DiscoveryService scans web pages for advertised syndication endpoints
type DiscoveryService struct {
	deps interfaces.Dependencies
}

// NewDiscoveryService creates a new discovery service instance
func NewDiscoveryService(deps interfaces.Dependencies) *DiscoveryService {
	return &DiscoveryService{
		deps: deps,
	}
}

// Discover fetches pageURL and returns the syndication endpoints its link
// elements advertise, in document order with hrefs resolved to absolute
// URLs. A page without endpoints yields an empty slice, not an error.
func (s *DiscoveryService) Discover(ctx context.Context, pageURL string) ([]interfaces.DiscoveredEndpoint, error) {
	if strings.TrimSpace(pageURL) == "" {
		return nil, &errors.ArgumentError{Name: "pageURL", Message: "must not be empty"}
	}

	base, err := url.Parse(pageURL)
	if err != nil || !base.IsAbs() {
		return nil, &errors.ArgumentError{Name: "pageURL", Message: "must be an absolute URL"}
	}

	cacheKey := "discover:" + pageURL
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && len(data) > 0 {
			var endpoints []interfaces.DiscoveredEndpoint
			if err := json.Unmarshal(data, &endpoints); err == nil {
				return endpoints, nil
			}
		}
	}

	if s.deps.HTTPClient == nil {
		return nil, &errors.ArgumentError{Name: "httpClient", Message: "no HTTP client configured"}
	}

	resp, err := s.deps.HTTPClient.Get(ctx, pageURL)
	if err != nil {
		return nil, errors.WrapError(err, "failed to fetch page")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &errors.FetchError{
			URL:        pageURL,
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return nil, errors.WrapError(err, "failed to parse page")
	}

	endpoints := scanLinks(doc, base)

	s.logDebug("Discovered syndication endpoints", map[string]interface{}{
		"page":      pageURL,
		"endpoints": len(endpoints),
	})

	if s.deps.Cache != nil && len(endpoints) > 0 {
		if data, err := json.Marshal(endpoints); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, discoveryCacheTTL)
		}
	}

	return endpoints, nil
}

// scanLinks walks the page's link elements and collects recognized
// endpoints. Duplicate URLs keep only their first occurrence.
func scanLinks(doc *goquery.Document, base *url.URL) []interfaces.DiscoveredEndpoint {
	endpoints := make([]interfaces.DiscoveredEndpoint, 0)
	seen := make(map[string]bool)

	doc.Find("link[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		mediaType := strings.ToLower(strings.TrimSpace(sel.AttrOr("type", "")))
		title := strings.TrimSpace(sel.AttrOr("title", ""))

		format, ok := classifyLink(relValues(sel.AttrOr("rel", "")), mediaType, title)
		if !ok {
			return
		}

		absolute := resolveURL(base, href)
		if absolute == "" || seen[absolute] {
			return
		}
		seen[absolute] = true

		endpoints = append(endpoints, interfaces.DiscoveredEndpoint{
			Title:     title,
			URL:       absolute,
			MediaType: mediaType,
			Format:    format,
		})
	})

	return endpoints
}

// classifyLink decides whether a link element advertises a syndication
// endpoint. Alternate links are matched by media type; APML attention
// profiles follow the rel="meta" autodiscovery convention instead.
func classifyLink(rels map[string]bool, mediaType, title string) (domain.ContentFormat, bool) {
	if rels["alternate"] {
		format, ok := mediaTypeFormats[mediaType]
		return format, ok
	}
	if rels["meta"] && strings.EqualFold(title, "apml") {
		if mediaType == "text/xml" || mediaType == "application/xml" || mediaType == "application/apml+xml" {
			return domain.FormatAPML, true
		}
	}
	return domain.FormatNone, false
}

// relValues splits a rel attribute into its lowercase tokens.
func relValues(rel string) map[string]bool {
	values := make(map[string]bool)
	for _, token := range strings.Fields(rel) {
		values[strings.ToLower(token)] = true
	}
	return values
}

// resolveURL resolves href against the page URL, returning "" when href is
// empty or unparseable.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

func (s *DiscoveryService) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}
