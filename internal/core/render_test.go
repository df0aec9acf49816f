package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/julien-sobczak/the-quizwriter/internal/markdown"
	"github.com/julien-sobczak/the-quizwriter/internal/quiz"
	"github.com/julien-sobczak/the-quizwriter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer(t *testing.T) {
	renderer := NewRenderer(quiz.RevealPolicy{Mode: quiz.ModeInput, HiddenPercent: 100})

	result := renderer.Render("<!-- hidden -->\n# [정답]\n\n\n\nText", renderer.defaults)
	assert.Equal(t, "# <span data-quiz=\"blank\" data-id=\"q0\" data-answer=\"정답\"></span>\n\nText\n", result.Document.String())
	assert.Len(t, renderer.cache, 1)

	// Same input, same policy
	renderer.Render("<!-- hidden -->\n# [정답]\n\n\n\nText", renderer.defaults)
	assert.Len(t, renderer.cache, 1)

	// Same input, different policy
	renderer.Render("<!-- hidden -->\n# [정답]\n\n\n\nText", quiz.RevealPolicy{Mode: quiz.ModeRead, HiddenPercent: 100})
	assert.Len(t, renderer.cache, 2)
}

func TestRendererKeepsCode(t *testing.T) {
	renderer := NewRenderer(quiz.DefaultPolicy)
	md := markdown.UnescapeTestDocument(`<!-- removed -->
”””html
<!-- [정답] kept -->
a



b
”””



Use ‛<!-- x -->‛ here.`)

	result := renderer.Render(md, quiz.RevealPolicy{Mode: quiz.ModeInput, HiddenPercent: 0})
	expected := markdown.UnescapeTestDocument(`”””html
<!-- [정답] kept -->
a



b
”””

Use ‛<!-- x -->‛ here.
`)
	assert.Equal(t, expected, result.Document)
	assert.Empty(t, result.Tokens)
}

func TestRenderFile(t *testing.T) {
	path := testutil.SetUpFromFileContent(t, "note.md", "---\nquiz:\n  hidden: 0\n---\n[Paris]\n")

	t.Run("Front Matter", func(t *testing.T) {
		rendered, err := NewRenderer(quiz.DefaultPolicy).RenderFile(path)
		require.NoError(t, err)
		assert.Equal(t, markdown.Document("<span data-quiz=\"answer\">Paris</span>\n"), rendered.Result.Document)
	})

	t.Run("Overrides", func(t *testing.T) {
		renderer := NewRenderer(quiz.DefaultPolicy, WithMode(quiz.ModeRead), WithHiddenPercent(100))
		rendered, err := renderer.RenderFile(path)
		require.NoError(t, err)
		assert.Equal(t, markdown.Document("<span data-quiz=\"blank\" data-id=\"q0\"></span>\n"), rendered.Result.Document)
		// The note policy is not modified
		assert.Equal(t, quiz.RevealPolicy{Mode: quiz.ModeInput, HiddenPercent: 0}, rendered.Note.Policy)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := NewRenderer(quiz.DefaultPolicy).RenderFile(path + ".missing")
		assert.Error(t, err)
	})
}

func TestRenderFiles(t *testing.T) {
	var paths []string
	for i := 0; i < 20; i++ {
		paths = append(paths, testutil.SetUpFromFileContent(t, fmt.Sprintf("note%d.md", i), fmt.Sprintf("# Note %d\n\n[answer %d]\n", i, i)))
	}

	renderer := NewRenderer(quiz.RevealPolicy{Mode: quiz.ModeInput, HiddenPercent: 0}, WithParallel(4))
	results, err := renderer.RenderFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, results, 20)
	for i, rendered := range results {
		assert.Equal(t, paths[i], rendered.Note.Path)
		require.Len(t, rendered.Result.Tokens, 1)
		assert.Equal(t, fmt.Sprintf("answer %d", i), rendered.Result.Tokens[0].Answer)
	}

	t.Run("Error", func(t *testing.T) {
		_, err := renderer.RenderFiles(context.Background(), append(paths, "missing.md"))
		assert.Error(t, err)
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := renderer.RenderFiles(ctx, paths)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
