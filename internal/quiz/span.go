package quiz

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/julien-sobczak/the-quizwriter/internal/markdown"
)

// Kind is the semantic kind of a tagged span.
type Kind string

const (
	KindBlank   Kind = "blank"
	KindAnswer  Kind = "answer"
	KindLiteral Kind = "literal"
)

// Markers are raw inline HTML. Commonmark renderers pass them through
// so that custom handlers can select them on the data-quiz attribute.
//
//	<span data-quiz="blank" data-id="q0" data-answer="정답"></span>
//	<span data-quiz="answer">정답</span>
//	<span data-quiz="literal">\[성공\]</span>
const attributeKind = "data-quiz"

var (
	regexSpan      = regexp.MustCompile(`(?s)<span data-quiz="(blank|answer|literal)"((?: data-[a-z]+="[^"]*")*)>(.*?)</span>`)
	regexAttribute = regexp.MustCompile(`data-([a-z]+)="([^"]*)"`)
)

// Span is a tagged span found in a transformed document.
type Span struct {
	Kind   Kind
	ID     string // blank only
	Answer string // blank only, empty in read mode
	Forced bool   // blank only
	Text   string // inner Markdown
	Start  int
	End    int
}

func blankSpan(token Token, mode Mode) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<span %s="%s" data-id="%s"`, attributeKind, KindBlank, token.ID))
	if mode != ModeRead {
		sb.WriteString(fmt.Sprintf(` data-answer="%s"`, html.EscapeString(token.Answer)))
	}
	if token.Forced {
		sb.WriteString(` data-forced="true"`)
	}
	sb.WriteString("></span>")
	return sb.String()
}

func answerSpan(content string) string {
	return fmt.Sprintf(`<span %s="%s">%s</span>`, attributeKind, KindAnswer, content)
}

// literalSpan wraps a bracketed text. Brackets are escaped to never be read as a link by a renderer.
func literalSpan(bracketed string) string {
	return fmt.Sprintf(`<span %s="%s">%s</span>`, attributeKind, KindLiteral, escapeBrackets(bracketed))
}

func escapeBrackets(s string) string {
	return strings.NewReplacer("[", `\[`, "]", `\]`).Replace(s)
}

// unescapeBrackets reverts escapeBrackets.
func unescapeBrackets(s string) string {
	return strings.NewReplacer(`\[`, "[", `\]`, "]").Replace(s)
}

// ParseSpans returns the tagged spans present in a transformed document.
func ParseSpans(doc markdown.Document) []Span {
	var spans []Span
	text := string(doc)
	for _, loc := range regexSpan.FindAllStringSubmatchIndex(text, -1) {
		span := Span{
			Kind:  Kind(text[loc[2]:loc[3]]),
			Text:  text[loc[6]:loc[7]],
			Start: loc[0],
			End:   loc[1],
		}
		for _, attribute := range regexAttribute.FindAllStringSubmatch(text[loc[4]:loc[5]], -1) {
			value := html.UnescapeString(attribute[2])
			switch attribute[1] {
			case "id":
				span.ID = value
			case "answer":
				span.Answer = value
			case "forced":
				span.Forced = value == "true"
			}
		}
		spans = append(spans, span)
	}
	return spans
}

// ReplaceSpans substitutes every tagged span by the text returned by fn.
func ReplaceSpans(doc markdown.Document, fn func(span Span) string) markdown.Document {
	text := string(doc)
	var sb strings.Builder
	last := 0
	for _, span := range ParseSpans(doc) {
		sb.WriteString(text[last:span.Start])
		sb.WriteString(fn(span))
		last = span.End
	}
	sb.WriteString(text[last:])
	return markdown.Document(sb.String())
}
