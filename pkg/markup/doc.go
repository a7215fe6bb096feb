// Package markup holds the primitives every component renders through: an
// ordered attribute map, conditional class lists, HTML escaping, and a small
// node tree that is serialized to a string only at the boundary.
//
// Text nodes are always escaped. Raw nodes are trusted fragments: they are
// written verbatim and the caller is responsible for any user data inside
// them. Sanitize and SanitizeSVG exist for content that is HTML but not
// trusted.
package markup
