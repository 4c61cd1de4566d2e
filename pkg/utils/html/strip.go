// ABOUTME: HTML utilities for reducing markup to plain text
// ABOUTME: Used wherever titles and content blocks need their tags removed

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strip removes markup from a string and returns its readable text with
// entities decoded and whitespace collapsed. Input that fails to parse is
// returned trimmed but otherwise unchanged.
func Strip(markup string) string {
	if !strings.ContainsAny(markup, "<&") {
		return Collapse(markup)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return Collapse(markup)
	}

	doc.Find("script, style").Remove()
	return Collapse(doc.Text())
}

// Collapse trims a string and folds runs of whitespace into single spaces.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
