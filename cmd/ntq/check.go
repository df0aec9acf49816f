package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check FILE ID ANSWER...",
	Short: "Check an answer",
	Long:  `Check the answer given for a blank (ex: ntq check notes.md q3 Paris).`,
	Args:  cobra.MinimumNArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		rendered, err := newRenderer().RenderFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		token, ok := rendered.Result.Token(args[1])
		if !ok {
			fmt.Printf("Unknown token %q\n", args[1])
			os.Exit(1)
		}
		if token.Check(strings.Join(args[2:], " ")) {
			color.Green("Correct!")
			return
		}
		color.Red("Wrong! Expected %q", token.Answer)
		os.Exit(1)
	},
}
