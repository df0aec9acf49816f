package quiz

import (
	"strings"

	"github.com/julien-sobczak/the-quizwriter/internal/markdown"
)

// Engine transforms authored Markdown into a tagged document.
// An engine holds no state between calls and can be shared between goroutines.
type Engine struct {
	policy RevealPolicy
}

// NewEngine returns an engine applying the given policy.
func NewEngine(policy RevealPolicy) *Engine {
	return &Engine{policy: policy}
}

// Policy returns the reveal policy of the engine.
func (e *Engine) Policy() RevealPolicy {
	return e.policy
}

// Result is the outcome of a transformation.
type Result struct {
	Document markdown.Document
	// Blank and answer tokens in document order
	Tokens []Token
	// Texts displayed as literal brackets
	Literals []string
}

// Stats counts tokens per kind.
type Stats struct {
	Blanks   int
	Answers  int
	Forced   int
	Literals int
}

func (r Result) Stats() Stats {
	var stats Stats
	for _, token := range r.Tokens {
		switch token.Kind {
		case KindBlank:
			stats.Blanks++
			if token.Forced {
				stats.Forced++
			}
		case KindAnswer:
			stats.Answers++
		}
	}
	stats.Literals = len(r.Literals)
	return stats
}

// Token returns the token with the given ID.
func (r Result) Token(id string) (Token, bool) {
	for _, token := range r.Tokens {
		if token.ID == id {
			return token, true
		}
	}
	return Token{}, false
}

// Transform runs the guards, the classifier and the restore chain.
// The input document is never modified.
func (e *Engine) Transform(md markdown.Document) Result {
	input := string(md)

	protected, code := CodeGuard{}.Protect(input)
	protected, links := LinkGuard{}.Protect(protected)
	protected, literals := LiteralGuard{}.Protect(protected)

	// Double brackets inside a token are plain bracket text, never nested spans or blanks
	classifier := &Classifier{
		Policy: e.policy,
		Holes:  literals,
		Expand: func(content string) string {
			content = literals.Substitute(content, bracketText)
			return expandChain(content, code, links)
		},
		Inline: func(content string) string {
			return literals.Substitute(content, func(kind, original string) string {
				return escapeBrackets(bracketText(kind, original))
			})
		},
	}
	classified, tokens := classifier.Apply(protected)

	return Result{
		Document: markdown.Document(RestoreChain(classified, code, links, literals)),
		Tokens:   tokens,
		Literals: literalTexts(literals, classified, code, links),
	}
}

// literalTexts returns the literal texts still present after classification.
// Literals swallowed by a token content are no longer displayed as literals.
func literalTexts(literals *Ledger, classified string, ledgers ...*Ledger) []string {
	var texts []string
	for _, placeholder := range literals.placeholders {
		if literals.kinds[placeholder] != kindLiteral || !strings.Contains(classified, placeholder) {
			continue
		}
		texts = append(texts, expandChain(literals.Lookup(placeholder), ledgers...))
	}
	return texts
}

// Transform is a shortcut for NewEngine(policy).Transform(md).
func Transform(md markdown.Document, policy RevealPolicy) Result {
	return NewEngine(policy).Transform(md)
}

// Transformer exposes the engine as a Markdown transformer.
func Transformer(policy RevealPolicy) markdown.Transformer {
	engine := NewEngine(policy)
	return func(document markdown.Document) (markdown.Document, error) {
		return engine.Transform(document).Document, nil
	}
}

// PlainText returns the text of a note with every answer revealed and no marker.
// Blanks are displayed as ___.
func PlainText(md markdown.Document) markdown.Document {
	result := Transform(md, RevealPolicy{Mode: ModeRead, HiddenPercent: 0})
	return ReplaceSpans(result.Document, func(span Span) string {
		if span.Kind == KindBlank {
			return "___"
		}
		// Answers may contain double brackets displayed as literals
		return unescapeBrackets(span.Text)
	})
}
