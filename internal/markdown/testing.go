package markdown

import "github.com/julien-sobczak/the-quizwriter/pkg/text"

// UnescapeTestDocument wraps text.UnescapeTestContent.
func UnescapeTestDocument(md string) Document {
	return Document(text.UnescapeTestContent(md))
}
