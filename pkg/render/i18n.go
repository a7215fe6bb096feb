package render

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingTranslator is passed to the missing handler when no
	// translator is configured.
	ErrMissingTranslator = errors.New("render: translator not configured")
	// ErrMissingTranslation is returned by translators for unknown keys.
	ErrMissingTranslation = errors.New("render: missing translation")
)

// Translator resolves a message key for a locale. Args are format arguments
// for messages that carry placeholders.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a plain function to Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate implements Translator.
func (f TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return f(locale, key, args...)
}

// MissingTranslationHandler decides what to render when a key cannot be
// translated. Args carry the caller arguments followed by a
// map[string]any{"default": fallback} entry.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// missingTranslationDefault returns the built-in label when one was supplied
// and the key otherwise.
func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	if fallback := defaultFromArgs(args); fallback != "" {
		return fallback
	}
	return key
}

func defaultFromArgs(args []any) string {
	for i := len(args) - 1; i >= 0; i-- {
		values, ok := args[i].(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return ""
}

// formatFallback applies args to the built-in label when it is a format.
func formatFallback(fallback string, args []any) string {
	if len(args) == 0 {
		return fallback
	}
	return fmt.Sprintf(fallback, args...)
}

func translate(locale, key, fallback string, args []any, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	formatted := formatFallback(fallback, args)
	if key == "" {
		return formatted
	}
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	handlerArgs := append(append([]any(nil), args...), map[string]any{"default": formatted})

	if t == nil {
		return onMissing(locale, key, handlerArgs, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key, args...)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	if err == nil {
		err = ErrMissingTranslation
	}
	return onMissing(locale, key, handlerArgs, err)
}
