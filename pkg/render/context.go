package render

import (
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uikit/pkg/markup"
)

// Context is a rendering session, typically one per page or request. It owns
// the state components share: the DOM id sequence, the set of scripts already
// emitted, the translator and the theme tokens.
//
// All methods are safe for concurrent use. A nil *Context is valid: labels use
// their built-in text, ids come from a process-wide sequence and every script
// request emits the script.
type Context struct {
	locale       string
	translator   Translator
	onMissing    MissingTranslationHandler
	theme        *theme.RendererConfig
	ids          IDGenerator
	deferScripts bool

	mu      sync.Mutex
	emitted map[string]struct{}
	scripts []Script
}

var (
	defaultTranslatorOnce sync.Once
	defaultTranslator     *CatalogTranslator
)

func builtinTranslator() *CatalogTranslator {
	defaultTranslatorOnce.Do(func() {
		defaultTranslator = NewDefaultTranslator()
	})
	return defaultTranslator
}

// NewContext creates a rendering session.
func NewContext(opts ...Option) *Context {
	c := &Context{
		locale:     DefaultLocale,
		translator: builtinTranslator(),
		onMissing:  missingTranslationDefault,
		ids:        &SequenceGenerator{},
		emitted:    make(map[string]struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Locale returns the session locale.
func (c *Context) Locale() string {
	if c == nil {
		return DefaultLocale
	}
	return c.locale
}

// Theme returns the theme configuration, if any.
func (c *Context) Theme() *theme.RendererConfig {
	if c == nil {
		return nil
	}
	return c.theme
}

// Translate resolves key for the session locale. When the key cannot be
// translated the fallback is used, formatted with args when args are given.
func (c *Context) Translate(key, fallback string, args ...any) string {
	if c == nil {
		return formatFallback(fallback, args)
	}
	return translate(c.locale, key, fallback, args, c.translator, c.onMissing)
}

// Label translates a built-in label, see Translate.
func (c *Context) Label(key, fallback string) string {
	return c.Translate(key, fallback)
}

// Class returns the theme override for a style token, or fallback.
func (c *Context) Class(token, fallback string) string {
	if c == nil || c.theme == nil || len(c.theme.Tokens) == 0 {
		return fallback
	}
	if value := strings.TrimSpace(c.theme.Tokens[token]); value != "" {
		return value
	}
	return fallback
}

// NextID returns a DOM id unique within the session.
func (c *Context) NextID(prefix string) string {
	if c == nil || c.ids == nil {
		return globalIDs.NextID(prefix)
	}
	return c.ids.NextID(prefix)
}

// RequireScript records that a component needs script. It reports whether
// the caller should write the script inline: true the first time a script
// name is seen in an inline session, false for repeats and for sessions with
// deferred scripts.
func (c *Context) RequireScript(script Script) bool {
	if c == nil {
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, seen := c.emitted[script.Name]; seen {
		return false
	}
	c.emitted[script.Name] = struct{}{}
	if c.deferScripts {
		c.scripts = append(c.scripts, script)
		return false
	}
	return true
}

// Script returns the script node when the caller should inline it, and an
// empty node otherwise.
func (c *Context) Script(script Script) markup.Node {
	if c.RequireScript(script) {
		return script.Node()
	}
	return markup.Empty
}

// Scripts returns the deferred scripts in first-use order.
func (c *Context) Scripts() []Script {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Script(nil), c.scripts...)
}

// Deferred reports whether scripts are collected for the page shell.
func (c *Context) Deferred() bool {
	return c != nil && c.deferScripts
}
