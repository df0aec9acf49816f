package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/julien-sobczak/the-quizwriter/internal/quiz"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tokensCmd)
}

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "List the tokens of a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rendered, err := newRenderer().RenderFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(formatTokens(rendered.Result))
	},
}

func formatTokens(result quiz.Result) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"ID", "Kind", "Answer", "Forced"})
	for _, token := range result.Tokens {
		t.AppendRow(table.Row{token.ID, string(token.Kind), token.Answer, strconv.FormatBool(token.Forced)})
	}
	for _, literal := range result.Literals {
		t.AppendRow(table.Row{"", string(quiz.KindLiteral), literal, ""})
	}
	stats := result.Stats()
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d blank(s), %d answer(s), %d literal(s)", stats.Blanks, stats.Answers, stats.Literals), ""})
	return t.Render()
}
