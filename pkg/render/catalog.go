package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLocale is used when a context has no locale configured.
const DefaultLocale = "fr"

// CatalogTranslator serves messages from an x/text catalog. Locales are
// matched with the x/text matcher, so "fr-CA" resolves to "fr" and unknown
// locales resolve to the first configured language.
type CatalogTranslator struct {
	builder *catalog.Builder
	tags    []language.Tag
	matcher language.Matcher
	keys    map[language.Tag]map[string]struct{}

	mu       sync.Mutex
	printers map[language.Tag]*message.Printer
}

// NewCatalogTranslator builds a translator from locale → key → message.
// The fallback locale is listed first and wins when nothing else matches.
func NewCatalogTranslator(fallback string, messages map[string]map[string]string) (*CatalogTranslator, error) {
	fallbackTag, err := language.Parse(fallback)
	if err != nil {
		return nil, fmt.Errorf("render: parse fallback locale %q: %w", fallback, err)
	}

	builder := catalog.NewBuilder(catalog.Fallback(fallbackTag))
	tr := &CatalogTranslator{
		builder:  builder,
		tags:     []language.Tag{fallbackTag},
		keys:     make(map[language.Tag]map[string]struct{}),
		printers: make(map[language.Tag]*message.Printer),
	}

	locales := make([]string, 0, len(messages))
	for locale := range messages {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("render: parse locale %q: %w", locale, err)
		}
		if tag != fallbackTag {
			tr.tags = append(tr.tags, tag)
		}
		known := tr.keys[tag]
		if known == nil {
			known = make(map[string]struct{})
			tr.keys[tag] = known
		}
		for key, msg := range messages[locale] {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("render: set message %s/%s: %w", locale, key, err)
			}
			known[key] = struct{}{}
		}
	}

	tr.matcher = language.NewMatcher(tr.tags)
	return tr, nil
}

// NewDefaultTranslator returns a translator loaded with the built-in labels.
func NewDefaultTranslator() *CatalogTranslator {
	tr, err := NewCatalogTranslator(DefaultLocale, DefaultMessages())
	if err != nil {
		panic(err)
	}
	return tr
}

// Translate implements Translator.
func (t *CatalogTranslator) Translate(locale, key string, args ...any) (string, error) {
	if t == nil {
		return "", ErrMissingTranslator
	}
	tag := t.match(locale)
	if _, ok := t.keys[tag][key]; !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrMissingTranslation, tag, key)
	}
	return t.printer(tag).Sprintf(key, args...), nil
}

// Locales lists the configured locales, fallback first.
func (t *CatalogTranslator) Locales() []string {
	out := make([]string, 0, len(t.tags))
	for _, tag := range t.tags {
		out = append(out, tag.String())
	}
	return out
}

func (t *CatalogTranslator) match(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return t.tags[0]
	}
	requested, err := language.Parse(locale)
	if err != nil {
		return t.tags[0]
	}
	_, index, confidence := t.matcher.Match(requested)
	if confidence == language.No || index < 0 || index >= len(t.tags) {
		return t.tags[0]
	}
	return t.tags[index]
}

func (t *CatalogTranslator) printer(tag language.Tag) *message.Printer {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok := t.printers[tag]; ok {
		return p
	}
	p := message.NewPrinter(tag, message.Catalog(t.builder))
	t.printers[tag] = p
	return p
}
