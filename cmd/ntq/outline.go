package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/julien-sobczak/the-quizwriter/internal/markdown"
	"github.com/julien-sobczak/the-quizwriter/internal/quiz"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(outlineCmd)
}

var outlineCmd = &cobra.Command{
	Use:   "outline FILE",
	Short: "Print the table of contents of a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file, err := markdown.ParseFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Print(formatOutline(quiz.Outline(file.Body)))
	},
}

func formatOutline(headings []quiz.Heading) string {
	var sb strings.Builder
	for _, heading := range headings {
		sb.WriteString(strings.Repeat("  ", heading.Level-1))
		sb.WriteString(fmt.Sprintf("- [%s](#%s)\n", heading.Title, heading.Anchor))
	}
	return sb.String()
}
