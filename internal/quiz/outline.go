package quiz

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/julien-sobczak/the-quizwriter/internal/markdown"
)

// Heading is an entry of a note outline.
type Heading struct {
	Level  int
	Title  string // plain text, tokens revealed
	Anchor string // unique inside the note
	Line   int    // 1-based
}

// Outline lists the headings of a note, ignoring the ones inside code blocks.
func Outline(md markdown.Document) []Heading {
	var headings []Heading
	seen := make(map[string]int)

	insideCodeBlock := false
	iterator := md.Iterator()
	for iterator.HasNext() {
		line := iterator.Next()
		if strings.HasPrefix(line.Text, "```") {
			insideCodeBlock = !insideCodeBlock
			continue
		}
		if insideCodeBlock {
			continue
		}

		ok, headingText, level := markdown.IsHeading(line.Text)
		if !ok {
			continue
		}
		title := PlainText(markdown.Document(headingText)).TrimSpace().String()
		headings = append(headings, Heading{
			Level:  level,
			Title:  title,
			Anchor: uniqueAnchor(seen, title),
			Line:   line.Number,
		})
	}
	return headings
}

func uniqueAnchor(seen map[string]int, title string) string {
	anchor := slug.Make(title)
	if anchor == "" {
		anchor = "section"
	}
	candidate := anchor
	for seen[candidate] > 0 {
		candidate = fmt.Sprintf("%s-%d", anchor, seen[anchor])
		seen[anchor]++
	}
	seen[candidate]++
	return candidate
}
