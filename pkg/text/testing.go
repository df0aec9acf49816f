package text

import "strings"

// UnescapeTestContent supports content using a special character instead of backticks.
//
// Multiline strings in Golang cannot contain backticks, but notes use them for code spans
// that must never be turned into quiz tokens. The ” and ‛ characters are accepted instead.
//
// Example: ”[answer]” will become `[answer]`
func UnescapeTestContent(content string) string {
	return strings.NewReplacer("”", "`", "‛", "`").Replace(content)
}
