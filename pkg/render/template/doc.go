// Package template defines the template engine contract used to render page
// shells around component fragments. The gotemplate subpackage provides the
// pongo2-backed implementation.
package template
