package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/julien-sobczak/the-quizwriter/internal/markdown"
	"github.com/julien-sobczak/the-quizwriter/internal/quiz"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Preview a note in the terminal",
	Long:  `Display a note with blanks as underlines and revealed answers highlighted.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rendered, err := newRenderer().RenderFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(formatPreview(rendered.Result.Document))
	},
}

// Same width for every blank so that answers are not hinted by their length
var blankWidth = strings.Repeat("_", 5)

var (
	blankColor  = color.New(color.FgYellow, color.Underline)
	answerColor = color.New(color.FgGreen, color.Bold)
)

func formatPreview(doc markdown.Document) string {
	preview := quiz.ReplaceSpans(doc, func(span quiz.Span) string {
		switch span.Kind {
		case quiz.KindBlank:
			return blankColor.Sprint(blankWidth)
		case quiz.KindAnswer:
			return answerColor.Sprint(span.Text)
		}
		return strings.NewReplacer(`\[`, "[", `\]`, "]").Replace(span.Text)
	})
	return preview.TrimSpace().String()
}
