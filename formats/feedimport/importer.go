// ABOUTME: Imports RSS, Atom and JSON feeds into BlogML documents
// ABOUTME: Maps feed items onto posts, deduplicating authors and categories by name

// Package feedimport converts syndication feeds parsed by gofeed into
// BlogML documents, so externally published content can enter the entity
// graph and be compared, extended and saved like native documents.
package feedimport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"

	"syndikit/core/domain"
	"syndikit/core/errors"
	"syndikit/core/interfaces"
	"syndikit/extensions/dublincore"
	"syndikit/formats/blogml"
	"syndikit/pkg/utils/parse"
	timeutil "syndikit/pkg/utils/time"
)

// Importer converts parsed feeds into BlogML documents
type Importer struct {
	deps interfaces.Dependencies
}

// NewImporter creates a new importer instance
func NewImporter(deps interfaces.Dependencies) *Importer {
	return &Importer{
		deps: deps,
	}
}

// ImportURL fetches a feed and imports it into a BlogML document.
func (i *Importer) ImportURL(ctx context.Context, feedURL string) (*blogml.Document, error) {
	if strings.TrimSpace(feedURL) == "" {
		return nil, &errors.ArgumentError{Name: "feedURL", Message: "must not be empty"}
	}
	if i.deps.HTTPClient == nil {
		return nil, &errors.ArgumentError{Name: "httpClient", Message: "no HTTP client configured"}
	}

	resp, err := i.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, errors.WrapError(err, "failed to fetch feed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &errors.FetchError{
			URL:        feedURL,
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
		}
	}

	data, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, errors.WrapError(err, "failed to read feed body")
	}

	return i.Import(data)
}

// Import parses feed bytes and imports them into a BlogML document. The
// feed flavor (RSS, Atom or JSON Feed) is detected from the content.
func (i *Importer) Import(data []byte) (*blogml.Document, error) {
	if len(data) == 0 {
		return nil, &errors.FormatError{Message: "feed content is empty"}
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WrapError(err, "failed to parse feed")
	}

	return i.ImportFeed(feed)
}

// ImportFeed converts an already-parsed feed into a BlogML document. Items
// become posts; their authors and categories are collected into the
// document-level registries and referenced by identifier. Imported content
// is marked approved.
func (i *Importer) ImportFeed(feed *gofeed.Feed) (*blogml.Document, error) {
	if feed == nil {
		return nil, &errors.ArgumentError{Name: "feed", Message: "must not be nil"}
	}

	doc := blogml.NewDocument()
	doc.ID = firstNonEmpty(feed.FeedLink, feed.Link)
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	doc.Title = plainText(feed.Title)
	doc.Subtitle = htmlText(feed.Description)
	doc.RootURL = feed.Link
	doc.ApprovalStatus = domain.ApprovalApproved
	doc.CreatedOn = feedTime(feed.PublishedParsed, feed.Published)
	doc.LastModifiedOn = feedTime(feed.UpdatedParsed, feed.Updated)
	if doc.LastModifiedOn.IsZero() {
		doc.LastModifiedOn = doc.CreatedOn
	}

	b := &documentBuilder{
		doc:        doc,
		authorIDs:  make(map[string]string),
		categoryID: make(map[string]string),
	}

	for _, person := range feedAuthors(feed) {
		b.authorRef(person)
	}
	for _, name := range feed.Categories {
		b.categoryRef(name)
	}
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		doc.Posts = append(doc.Posts, b.convertItem(item))
	}

	if dc := dublinCoreOf(feed.DublinCoreExt); dc != nil {
		doc.AddExtension(dc)
	}

	i.logDebug("Imported feed", map[string]interface{}{
		"title":      doc.TitleText(),
		"posts":      len(doc.Posts),
		"authors":    len(doc.Authors),
		"categories": len(doc.Categories),
	})

	return doc, nil
}

// documentBuilder accumulates the document-level author and category
// registries while items convert. Lookups are case-insensitive so items
// that spell a name differently still share one entry.
type documentBuilder struct {
	doc        *blogml.Document
	authorIDs  map[string]string
	categoryID map[string]string
}

// authorRef returns the identifier of the registered author matching
// person, registering a new entry on first sight. Returns "" for an
// unusable person.
func (b *documentBuilder) authorRef(person *gofeed.Person) string {
	if person == nil {
		return ""
	}
	key := strings.ToLower(firstNonEmpty(person.Name, person.Email))
	if key == "" {
		return ""
	}
	if id, ok := b.authorIDs[key]; ok {
		return id
	}

	id := fmt.Sprintf("author-%d", len(b.doc.Authors)+1)
	author := &blogml.Author{Email: person.Email}
	author.ID = id
	author.Title = plainText(person.Name)
	author.ApprovalStatus = domain.ApprovalApproved
	b.doc.Authors = append(b.doc.Authors, author)
	b.authorIDs[key] = id
	return id
}

// categoryRef returns the identifier of the registered category named name,
// registering a new entry on first sight. Returns "" for a blank name.
func (b *documentBuilder) categoryRef(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	key := strings.ToLower(name)
	if id, ok := b.categoryID[key]; ok {
		return id
	}

	id := fmt.Sprintf("category-%d", len(b.doc.Categories)+1)
	category := &blogml.Category{}
	category.ID = id
	category.Title = domain.NewTextContent(name)
	category.ApprovalStatus = domain.ApprovalApproved
	b.doc.Categories = append(b.doc.Categories, category)
	b.categoryID[key] = id
	return id
}

// convertItem maps one feed item onto a post.
func (b *documentBuilder) convertItem(item *gofeed.Item) *blogml.Post {
	post := &blogml.Post{PostURL: item.Link}
	post.ID = firstNonEmpty(item.GUID, item.Link)
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.Title = plainText(item.Title)
	post.ApprovalStatus = domain.ApprovalApproved
	post.CreatedOn = feedTime(item.PublishedParsed, item.Published)
	post.LastModifiedOn = feedTime(item.UpdatedParsed, item.Updated)
	if post.LastModifiedOn.IsZero() {
		post.LastModifiedOn = post.CreatedOn
	}

	if item.Content != "" {
		post.Content = htmlText(item.Content)
		if item.Description != "" {
			post.Excerpt = htmlText(item.Description)
			post.HasExcerpt = true
		}
	} else {
		post.Content = htmlText(item.Description)
	}

	for _, person := range itemAuthors(item) {
		if id := b.authorRef(person); id != "" {
			post.AuthorRefs = append(post.AuthorRefs, id)
		}
	}
	for _, name := range item.Categories {
		if id := b.categoryRef(name); id != "" {
			post.CategoryRefs = append(post.CategoryRefs, id)
		}
	}

	for _, enc := range item.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		post.Attachments = append(post.Attachments, &blogml.Attachment{
			URL:         enc.URL,
			ExternalURI: enc.URL,
			MimeType:    enc.Type,
			Size:        parse.Int64OrZero(enc.Length),
		})
	}

	if dc := dublinCoreOf(item.DublinCoreExt); dc != nil {
		post.AddExtension(dc)
	}

	return post
}

// dublinCoreOf converts gofeed's Dublin Core block into the attachable
// extension, taking the first value of each repeated element. Returns nil
// when the block carries nothing.
func dublinCoreOf(dc *ext.DublinCoreExtension) *dublincore.Extension {
	if dc == nil {
		return nil
	}
	out := &dublincore.Extension{
		Title:       first(dc.Title),
		Creator:     firstNonEmpty(first(dc.Creator), first(dc.Author)),
		Subject:     first(dc.Subject),
		Description: first(dc.Description),
		Publisher:   first(dc.Publisher),
		Contributor: first(dc.Contributor),
		Type:        first(dc.Type),
		Format:      first(dc.Format),
		Identifier:  first(dc.Identifier),
		Source:      first(dc.Source),
		Language:    first(dc.Language),
		Relation:    first(dc.Relation),
		Coverage:    first(dc.Coverage),
		Rights:      first(dc.Rights),
	}
	if raw := first(dc.Date); raw != "" {
		out.Date = timeutil.ParseFlexibleTime(raw)
	}
	if out.IsEmpty() {
		return nil
	}
	return out
}

func feedAuthors(feed *gofeed.Feed) []*gofeed.Person {
	if len(feed.Authors) > 0 {
		return feed.Authors
	}
	if feed.Author != nil {
		return []*gofeed.Person{feed.Author}
	}
	return nil
}

func itemAuthors(item *gofeed.Item) []*gofeed.Person {
	if len(item.Authors) > 0 {
		return item.Authors
	}
	if item.Author != nil {
		return []*gofeed.Person{item.Author}
	}
	return nil
}

// feedTime prefers the pre-parsed timestamp and falls back to flexible
// parsing of the raw value.
func feedTime(parsed *time.Time, raw string) time.Time {
	if parsed != nil {
		return *parsed
	}
	if raw != "" {
		return timeutil.ParseFlexibleTime(raw)
	}
	return time.Time{}
}

func plainText(value string) *domain.TextContent {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return domain.NewTextContent(value)
}

func htmlText(value string) *domain.TextContent {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &domain.TextContent{Value: value, Type: domain.TextHTML}
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func (i *Importer) logDebug(msg string, fields map[string]interface{}) {
	if i.deps.Logger != nil {
		i.deps.Logger.Debug(msg, fields)
	}
}
