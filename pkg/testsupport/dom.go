package testsupport

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-uikit/pkg/markup"
)

// Parse renders nodes and loads the result into a goquery document.
func Parse(t *testing.T, nodes ...markup.Node) *goquery.Document {
	t.Helper()
	return ParseHTML(t, markup.Render(nodes...))
}

// ParseHTML loads an HTML string into a goquery document.
func ParseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// Count returns how many elements match selector.
func Count(t *testing.T, doc *goquery.Document, selector string) int {
	t.Helper()
	return doc.Find(selector).Length()
}

// RequireOne fails unless exactly one element matches selector.
func RequireOne(t *testing.T, doc *goquery.Document, selector string) *goquery.Selection {
	t.Helper()
	sel := doc.Find(selector)
	if sel.Length() != 1 {
		html, _ := doc.Html()
		t.Fatalf("expected exactly one %q, found %d in:\n%s", selector, sel.Length(), html)
	}
	return sel
}
