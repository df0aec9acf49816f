package quiz

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Check reports if the user input matches the answer of the token.
// Comparison ignores case, Unicode normalization and extra spaces.
// Blanks without answer accept any input.
func (t Token) Check(input string) bool {
	if t.Answer == "" {
		return true
	}
	return normalizeAnswer(input) == normalizeAnswer(t.Answer)
}

func normalizeAnswer(s string) string {
	s = norm.NFC.String(s)
	s = strings.Join(strings.Fields(s), " ")
	return cases.Fold().String(s)
}
