// Package minify collapses file content into a single-line, whitespace-normalized form.
package minify

import (
	"regexp"
	"strings"
)

var whitespaceRunExpression = regexp.MustCompile(`\s+`)

// Minify splits text on line boundaries, discards lines that are empty after
// trimming, joins the survivors with a single space, and collapses any
// remaining run of whitespace into one space. The operation is idempotent.
func Minify(text string) string {
	normalizedText := strings.ReplaceAll(text, "\r\n", "\n")
	var survivingLines []string
	for _, line := range strings.Split(normalizedText, "\n") {
		trimmedLine := strings.TrimSpace(line)
		if trimmedLine == "" {
			continue
		}
		survivingLines = append(survivingLines, trimmedLine)
	}
	joinedContent := strings.Join(survivingLines, " ")
	return whitespaceRunExpression.ReplaceAllString(joinedContent, " ")
}
