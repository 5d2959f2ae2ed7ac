// Package sanitize strips markup from user-supplied free text before it is stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes every HTML element from s and trims surrounding whitespace.
func Text(s string) string {
	if s == "" {
		return s
	}
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}

// TextPtr applies Text to a non-nil pointer target in place and returns it.
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := Text(*s)
	return &v
}

// Lines sanitizes every item and drops the ones left empty.
func Lines(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := Text(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}
