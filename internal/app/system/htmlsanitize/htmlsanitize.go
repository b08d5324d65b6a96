// Package htmlsanitize strips unsafe HTML from rich-text input.
//
// Blog content and announcement messages arrive from a rich text editor and
// are stored as HTML. Everything that could execute script is removed before
// the value reaches the database.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// Sanitize returns s with unsafe HTML removed. Safe formatting tags
// (paragraphs, bold, lists, links with http/https hrefs) are preserved.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
