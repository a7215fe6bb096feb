package render

import theme "github.com/goliatone/go-theme"

// Option configures a Context.
type Option func(*Context)

// WithLocale sets the locale passed to the translator.
func WithLocale(locale string) Option {
	return func(c *Context) {
		if locale != "" {
			c.locale = locale
		}
	}
}

// WithTranslator replaces the built-in translator. Passing nil disables
// translation so every label uses its built-in text.
func WithTranslator(t Translator) Option {
	return func(c *Context) {
		c.translator = t
	}
}

// WithMissingTranslationHandler customises the text rendered for keys the
// translator does not know.
func WithMissingTranslationHandler(handler MissingTranslationHandler) Option {
	return func(c *Context) {
		if handler != nil {
			c.onMissing = handler
		}
	}
}

// WithTheme lets theme tokens override component style classes.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *Context) {
		c.theme = cfg
	}
}

// WithIDGenerator replaces the per-context id sequence.
func WithIDGenerator(gen IDGenerator) Option {
	return func(c *Context) {
		if gen != nil {
			c.ids = gen
		}
	}
}

// WithDeferredScripts collects scripts instead of inlining them next to the
// component. The page shell writes them once, before </body>.
func WithDeferredScripts() Option {
	return func(c *Context) {
		c.deferScripts = true
	}
}
