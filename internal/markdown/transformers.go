package markdown

import (
	"regexp"

	"github.com/julien-sobczak/the-quizwriter/pkg/text"
)

// Transformer applies changes on a Markdown document
type Transformer func(document Document) (Document, error)

// Transform applies transformers successively to create a new Markdown document
func (m Document) Transform(transformers ...Transformer) (Document, error) {
	result := m
	for _, transformer := range transformers {
		resultTransformed, err := transformer(result)
		if err != nil {
			return m, err
		}
		result = resultTransformed
	}
	return result, nil
}

// MustTransform is similar to Transform but does not expect an error
func (m Document) MustTransform(transformers ...Transformer) Document {
	result, err := m.Transform(transformers...)
	if err != nil {
		panic(err)
	}
	return result
}

/*
 * Transformers
 */

var regexHTMLComment = regexp.MustCompile(`(?s)<!--.+?-->`)

// StripHTMLComments transforms a Markdown document to remove HTML comments
func StripHTMLComments() Transformer {
	return func(document Document) (Document, error) {
		md := regexHTMLComment.ReplaceAllString(string(document), "")
		return Document(md).TrimSpace(), nil
	}
}

// SquashBlankLines removes blank lines when multiple successive blank lines are present
func SquashBlankLines() Transformer {
	return func(document Document) (Document, error) {
		return Document(text.SquashBlankLines(string(document))), nil
	}
}
