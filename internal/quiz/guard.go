package quiz

import (
	"regexp"
	"strings"

	"github.com/julien-sobczak/the-quizwriter/internal/markdown"
)

// Guard shields a class of syntax from the passes that follow it.
type Guard interface {
	// Protect replaces every match by a placeholder and returns the ledger able to restore them.
	Protect(input string) (string, *Ledger)
}

/*
 * Code
 */

var (
	regexFencedCode = regexp.MustCompile("(?s)```.*?```")
	regexInlineCode = regexp.MustCompile("`[^`\n]+`")
)

// CodeGuard protects fenced code blocks and inline code spans.
// It must run before any other guard.
type CodeGuard struct{}

func (CodeGuard) Protect(input string) (string, *Ledger) {
	ledger := NewLedger(input)
	protect := func(match string) string {
		return ledger.Protect("CODE", match)
	}
	result := regexFencedCode.ReplaceAllStringFunc(input, protect)
	result = regexInlineCode.ReplaceAllStringFunc(result, protect)
	return result, ledger
}

/*
 * Links
 */

var (
	// (label)[https://url]
	regexReversedLink = regexp.MustCompile(`\(([^()\n]+)\)\[(https?://[^\[\]\s]+)\]`)
	// [label](url "title")
	regexLink = regexp.MustCompile(`\[([^\[\]\n]*)\]\(([^()\s]*)(?:\s+"([^"\n]*)")?\)`)
)

// LinkGuard protects Markdown links, including the reversed (label)[url] syntax.
// Links are restored in their canonical [label](url) form.
type LinkGuard struct{}

func (LinkGuard) Protect(input string) (string, *Ledger) {
	ledger := NewLedger(input)

	result := regexReversedLink.ReplaceAllStringFunc(input, func(match string) string {
		submatch := regexReversedLink.FindStringSubmatch(match)
		link := markdown.Link{
			Text: submatch[1],
			URL:  markdown.NormalizeURL(submatch[2]),
		}
		return ledger.Protect("LINK", link.String())
	})

	result = replaceAllSubmatchFunc(regexLink, result, func(match []string, image bool) string {
		if image {
			// Image sources are not normalized but alternative texts are protected too
			return ledger.Protect("LINK", match[0])
		}
		link := markdown.Link{
			Text:  match[1],
			URL:   markdown.NormalizeURL(match[2]),
			Title: match[3],
		}
		return ledger.Protect("LINK", link.String())
	})

	return result, ledger
}

// replaceAllSubmatchFunc is similar to ReplaceAllStringFunc but passes the submatches
// and whether the match is preceded by "!" (Golang doesn't support negative lookbehind).
func replaceAllSubmatchFunc(r *regexp.Regexp, input string, fn func(match []string, image bool) string) string {
	var sb strings.Builder
	last := 0
	for _, loc := range r.FindAllStringSubmatchIndex(input, -1) {
		start, end := loc[0], loc[1]
		image := start > 0 && input[start-1] == '!'
		match := make([]string, len(loc)/2)
		for i := range match {
			if loc[2*i] >= 0 {
				match[i] = input[loc[2*i]:loc[2*i+1]]
			}
		}
		sb.WriteString(input[last:start])
		sb.WriteString(fn(match, image))
		last = end
	}
	sb.WriteString(input[last:])
	return sb.String()
}

/*
 * Literal brackets
 */

var regexDoubleBracket = regexp.MustCompile(`\[\[([^\n]*?)\]\]`)

const (
	kindLiteral = "LIT"
	kindHole    = "HOLE"
)

// LiteralGuard protects [[text]], displayed as [text], and [[ ]], a blank that is always hidden.
// Its ledger must be restored right after classification.
type LiteralGuard struct{}

func (LiteralGuard) Protect(input string) (string, *Ledger) {
	ledger := NewLedger(input).Format(kindLiteral, literalSpan)

	result := regexDoubleBracket.ReplaceAllStringFunc(input, func(match string) string {
		inner := regexDoubleBracket.FindStringSubmatch(match)[1]
		if strings.TrimSpace(inner) == "" {
			// Resolved by the classifier
			return ledger.Protect(kindHole, match)
		}
		return ledger.Protect(kindLiteral, "["+inner+"]")
	})

	return result, ledger
}

// bracketText returns the single-bracket text displayed for a double-bracket original.
func bracketText(kind, original string) string {
	if kind == kindHole {
		// [[ ]] => [ ]
		return original[1 : len(original)-1]
	}
	return original
}

// OutsideCode applies the transformers to the text outside code blocks and code spans.
// Code is restored verbatim.
func OutsideCode(transformers ...markdown.Transformer) markdown.Transformer {
	return func(document markdown.Document) (markdown.Document, error) {
		protected, code := CodeGuard{}.Protect(string(document))
		result, err := markdown.Document(protected).Transform(transformers...)
		if err != nil {
			return document, err
		}
		return markdown.Document(code.Restore(string(result))), nil
	}
}
