package maskconfig

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	hintPolicyOnce sync.Once
	hintPolicy     *bluemonday.Policy
)

// sanitizeHint reduces hint markup to plain text.
func sanitizeHint(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := hintSanitizer().Sanitize(trimmed)
	return strings.Join(strings.Fields(html.UnescapeString(cleaned)), " ")
}

func hintSanitizer() *bluemonday.Policy {
	hintPolicyOnce.Do(func() {
		hintPolicy = bluemonday.StrictPolicy()
	})
	return hintPolicy
}
