// ABOUTME: Character encoding handling for the load and save pipelines
// ABOUTME: Defaults auto-detect from BOM and transport headers; explicit encodings transcode up front

package adapter

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/antchfx/xmlquery"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"

	"syndikit/core/domain"
	"syndikit/core/errors"
)

// IsDefaultEncoding reports whether name means the default UTF-8 encoding.
func IsDefaultEncoding(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

var declEncoding = regexp.MustCompile(`encoding\s*=\s*("[^"]*"|'[^']*')`)

// normalizeDeclaration rewrites the XML declaration's encoding label to
// UTF-8 after a byte stream has been transcoded, so the parser does not
// decode the content a second time.
func normalizeDeclaration(data []byte) []byte {
	if !bytes.HasPrefix(data, []byte("<?xml")) {
		return data
	}
	end := bytes.Index(data, []byte("?>"))
	if end < 0 {
		return data
	}

	decl := declEncoding.ReplaceAll(data[:end], []byte(`encoding="UTF-8"`))
	out := make([]byte, 0, len(decl)+len(data)-end)
	out = append(out, decl...)
	out = append(out, data[end:]...)
	return out
}

// DecodeBytes converts data to UTF-8 according to the configured encoding
// name. The default encoding defers to the parser's own label-driven
// detection, transcoding up front only when a byte-order mark or the
// transport's content type identifies a non-UTF-8 encoding. An explicit
// encoding always transcodes.
func DecodeBytes(data []byte, encodingName, contentType string) ([]byte, error) {
	if IsDefaultEncoding(encodingName) {
		enc, name, certain := charset.DetermineEncoding(data, contentType)
		if !certain || name == "utf-8" {
			return data, nil
		}
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return nil, errors.WrapError(err, "failed to decode "+name+" content")
		}
		return normalizeDeclaration(decoded), nil
	}

	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, &errors.ArgumentError{
			Name:    "characterEncoding",
			Message: fmt.Sprintf("unsupported encoding %q", encodingName),
		}
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, errors.WrapError(err, "failed to decode "+encodingName+" content")
	}
	return normalizeDeclaration(decoded), nil
}

// ParseBytes decodes data per the settings' encoding and parses it into a
// navigable document tree. Parser errors propagate unmodified.
func ParseBytes(data []byte, settings domain.LoadSettings, contentType string) (*xmlquery.Node, error) {
	decoded, err := DecodeBytes(data, settings.CharacterEncoding, contentType)
	if err != nil {
		return nil, err
	}
	return xmlquery.Parse(bytes.NewReader(decoded))
}

// encodeWriter wraps w so serialized output is transcoded to encodingName,
// returning the writer to use and the label for the XML declaration.
func encodeWriter(w io.Writer, encodingName string) (io.Writer, string, error) {
	if IsDefaultEncoding(encodingName) {
		return w, "UTF-8", nil
	}

	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, "", &errors.ArgumentError{
			Name:    "characterEncoding",
			Message: fmt.Sprintf("unsupported encoding %q", encodingName),
		}
	}

	label := encodingName
	if canonical, err := htmlindex.Name(enc); err == nil {
		label = canonical
	}
	return enc.NewEncoder().Writer(w), label, nil
}
