package markdown_test

import (
	"testing"

	"github.com/julien-sobczak/the-quizwriter/pkg/markdown"
	"github.com/stretchr/testify/assert"
)

func TestToHTML(t *testing.T) {
	var tests = []struct {
		name     string
		md       string
		expected string
	}{
		{
			name:     "Paragraph",
			md:       "Hello",
			expected: "<p>Hello</p>",
		},
		{
			name:     "Emphasis",
			md:       "I just love **bold text**.",
			expected: "<p>I just love <strong>bold text</strong>.</p>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, markdown.ToHTML(tt.md))
		})
	}

	t.Run("Markers", func(t *testing.T) {
		actual := markdown.ToHTML(`The capital is <span data-quiz="answer">Paris</span>.`)
		assert.Contains(t, actual, `<span data-quiz="answer">Paris</span>`)

		actual = markdown.ToHTML(`<span data-quiz="blank" data-id="q0" data-answer="정답"></span>`)
		assert.Contains(t, actual, `<span data-quiz="blank" data-id="q0" data-answer="정답"></span>`)
	})
}
