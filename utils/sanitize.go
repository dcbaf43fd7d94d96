package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.StrictPolicy()

// Sanitize strips all HTML from user-supplied display strings before they
// are persisted.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
