package markdown

import (
	"strings"

	"github.com/julien-sobczak/the-quizwriter/internal/helpers"
	"github.com/julien-sobczak/the-quizwriter/pkg/text"
)

// Document represents a Markdown document (can be a whole note, or just a snippet)
type Document string

// Null object
var EmptyDocument = Document("")

// Lines returns the lines present in the Markdown document
func (m Document) Lines() []string {
	return strings.Split(string(m), "\n")
}

func (m Document) IsBlank() bool {
	return text.IsBlank(string(m))
}

func (m Document) Hash() string {
	return helpers.Hash([]byte(m))
}

func (m Document) Iterator() *text.LineIterator {
	return text.NewLineIteratorFromText(string(m))
}

func (m Document) String() string {
	return string(m)
}

// TrimSpace removes spaces at the start and end of a markdown document.
func (m Document) TrimSpace() Document {
	return Document(strings.TrimSpace(string(m)))
}

/*
 * Helpers
 */

// IsHeading returns if a given line is a Markdown heading and its level.
func IsHeading(line string) (bool, string, int) {
	if !strings.HasPrefix(line, "#") {
		return false, "", 0
	}
	level := len(line) - len(strings.TrimLeft(line, "#"))
	if level > 6 {
		return false, "", 0
	}
	rest := line[level:]
	if rest == "" {
		// Empty heading (ex: "##")
		return true, "", level
	}
	if !strings.HasPrefix(rest, " ") {
		// Ex: #hashtag
		return false, "", 0
	}
	return true, strings.TrimPrefix(rest, " "), level
}
