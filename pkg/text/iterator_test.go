package text_test

import (
	"testing"

	"github.com/julien-sobczak/the-quizwriter/pkg/text"
	"github.com/stretchr/testify/assert"
)

func TestLineIterator(t *testing.T) {

	t.Run("Basic", func(t *testing.T) {
		iterator := text.NewLineIteratorFromText("# [정답]\n\n일반 텍스트")

		assert.True(t, iterator.HasNext())
		assert.Equal(t, text.Line{Text: "# [정답]", Number: 1}, iterator.Peek())
		assert.Equal(t, text.Line{Text: "# [정답]", Number: 1}, iterator.Next())

		blank := iterator.Next()
		assert.Equal(t, 2, blank.Number)
		assert.True(t, blank.IsBlank())

		assert.Equal(t, text.Line{Text: "일반 텍스트", Number: 3}, iterator.Next())
		assert.False(t, iterator.HasNext())

		// Missing lines are considered like blank lines
		assert.Equal(t, text.MissingLine, iterator.Next())
		assert.True(t, iterator.Peek().IsBlank())
	})

	t.Run("SkipBlankLines", func(t *testing.T) {
		md := "" +
			/* 1 */ "\n" +
			/* 2 */ "\n" +
			/* 3 */ "# Title\n" +
			/* 4 */ "\n" +
			/* 5 */ "Text\n"
		iterator := text.NewLineIteratorFromText(md)

		// Jump to next non-blank line
		iterator.SkipBlankLines()
		assert.True(t, iterator.HasNext())
		titleLine := iterator.Next()
		assert.Equal(t, "# Title", titleLine.Text)
		assert.Equal(t, 3, titleLine.Number)

		iterator.SkipBlankLines()
		textLine := iterator.Next()
		assert.Equal(t, "Text", textLine.Text)
		assert.Equal(t, 5, textLine.Number)

		// Line 6 is the empty string after the trailing newline
		iterator.SkipBlankLines()
		assert.False(t, iterator.HasNext()) // end of doc
	})
}
