package quiz

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// A bracket preceded by "\" or "]", or followed by "(", "[" or ":" is never a token
// (escaped bracket, link, reference link, footnote or reference definition).
const regexTokenRaw = `(?<![\\\]])\[([^\[\]\n]*)\](?![(\[:])`

// An empty class never matches.
const noHole = `[^\s\S]`

var (
	regexToken = compileTokenPattern(noHole)
	regexURL   = regexp.MustCompile(`^https?://`)
)

func compileTokenPattern(hole string) *regexp2.Regexp {
	return regexp2.MustCompile(`(`+hole+`)|`+regexTokenRaw, regexp2.None)
}

// Token is a bracket-delimited quiz answer candidate.
// Identity is derived from the position in the document and never persisted.
type Token struct {
	ID       string
	Ordinal  int
	Answer   string
	Kind     Kind
	Revealed bool
	// Forced tokens come from [[ ]] and ignore the reveal policy.
	Forced bool
}

// Classifier turns the remaining single-bracket spans into blank or answer spans.
type Classifier struct {
	Policy RevealPolicy
	// Holes contains the [[ ]] placeholders to resolve as forced blanks.
	Holes *Ledger
	// Expand resolves the placeholders present in token contents.
	Expand func(string) string
	// Inline rewrites the content of revealed answers before they are wrapped in a span.
	Inline func(string) string
}

// Apply classifies tokens from left to right.
// The ordinal counter is local to the call.
func (c *Classifier) Apply(input string) (string, []Token) {
	re := regexToken
	if c.Holes != nil && c.Holes.Len() > 0 {
		re = compileTokenPattern(c.Holes.pattern(kindHole))
	}

	var tokens []Token
	ordinal := 0
	result, err := re.ReplaceFunc(input, func(m regexp2.Match) string {
		current := ordinal
		ordinal++

		if hole := m.GroupByNumber(1); hole != nil && len(hole.Captures) > 0 {
			token := Token{
				ID:      tokenID(current),
				Ordinal: current,
				Kind:    KindBlank,
				Forced:  true,
			}
			tokens = append(tokens, token)
			return blankSpan(token, c.Policy.Mode)
		}

		content := m.GroupByNumber(2).String()
		answer := strings.TrimSpace(c.expand(content))

		if regexURL.MatchString(answer) || strings.HasPrefix(answer, "^") {
			// Not a token (unprotected URL or footnote reference)
			return m.String()
		}

		token := Token{
			ID:      tokenID(current),
			Ordinal: current,
			Answer:  answer,
		}
		if answer == "" || Hidden(answer, current, c.Policy.HiddenPercent) {
			token.Kind = KindBlank
			tokens = append(tokens, token)
			return blankSpan(token, c.Policy.Mode)
		}
		token.Kind = KindAnswer
		token.Revealed = true
		tokens = append(tokens, token)
		return answerSpan(c.inline(strings.TrimSpace(content)))
	}, -1, -1)
	if err != nil {
		// Only a match timeout can fail and none is configured
		return input, nil
	}
	return result, tokens
}

func (c *Classifier) expand(content string) string {
	if c.Expand == nil {
		return content
	}
	return c.Expand(content)
}

func (c *Classifier) inline(content string) string {
	if c.Inline == nil {
		return content
	}
	return c.Inline(content)
}

func tokenID(ordinal int) string {
	return fmt.Sprintf("q%d", ordinal)
}
