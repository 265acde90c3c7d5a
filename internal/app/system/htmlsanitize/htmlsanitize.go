// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize cleans user-supplied HTML before it is stored.
// Blog post content and comments go through Sanitize on every write.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy = buildPolicy()

// buildPolicy starts from the bluemonday UGC policy and adds the
// formatting the post editor emits: images, tables, extra inline
// formatting tags, and class/style attributes on table elements.
func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowImages()
	p.AllowTables()
	p.AllowElements("u", "s", "sub", "sup", "mark")
	p.AllowAttrs("class", "style").OnElements("table", "thead", "tbody", "tfoot", "tr", "th", "td")
	return p
}

// Sanitize strips dangerous markup from s, keeping the formatting the
// editor is allowed to produce.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
