package ui

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// PlainText strips all markup from user supplied text (URL parameters, form
// attributes) before it is placed into a banner or dialog.
func PlainText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	// the strict policy escapes what it keeps; templates escape again on output
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(trimmed)))
}
