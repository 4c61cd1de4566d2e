package loader

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"

	"syndikit/core/adapter"
	"syndikit/core/domain"
	"syndikit/core/errors"
	"syndikit/core/interfaces"
	"syndikit/pkg/xmlns"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	infoFunc  func(msg string, fields map[string]interface{})
	warnFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}

// testResource is a minimal resource with a single title field, enough to
// observe whether a fill happened without dragging a full format in.
type testResource struct {
	domain.ExtensionSlot
	Title string
}

func (r *testResource) Format() domain.ContentFormat { return domain.FormatBlogML }
func (r *testResource) RootName() string             { return "blog" }
func (r *testResource) RootNamespace() string        { return xmlns.BlogML }

func (r *testResource) Fill(node *xmlquery.Node, settings domain.LoadSettings) (bool, error) {
	root := adapter.RootElement(node)
	if root == nil {
		return false, &errors.FormatError{Message: "missing root element"}
	}
	r.Title = adapter.InnerText(adapter.FirstChildElement(root, "", "title"))
	return r.Title != "", nil
}

func (r *testResource) WriteContent(root *etree.Element, settings domain.SaveSettings) error {
	root.CreateElement("title").SetText(r.Title)
	return nil
}

func (r *testResource) WalkExtensible(visit func(domain.Extensible) bool) bool {
	return visit(r)
}
