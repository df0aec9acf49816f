package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/julien-sobczak/the-quizwriter/internal/core"
	"github.com/julien-sobczak/the-quizwriter/pkg/filesystem"
	"github.com/julien-sobczak/the-quizwriter/pkg/markdown"
	"github.com/spf13/cobra"
)

var outputHTML bool

func init() {
	renderCmd.Flags().BoolVarP(&outputHTML, "html", "", false, "convert the tagged Markdown to HTML")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render PATH...",
	Short: "Render notes",
	Long:  `Output notes with answers tagged as blanks or revealed answers. Directories are searched recursively.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := core.CurrentConfig()
		paths, err := filesystem.ListFiles(args, config.ConfigFile.SupportExtension)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		core.CurrentLogger().Infof("Rendering %d note(s)", len(paths))

		results, err := newRenderer().RenderFiles(context.Background(), paths)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Print(formatRendered(results, outputHTML))
	},
}

func formatRendered(results []*core.Rendered, html bool) string {
	var sb strings.Builder
	for i, rendered := range results {
		if len(results) > 1 {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(fmt.Sprintf("<!-- %s -->\n", rendered.Note.Path))
		}
		output := rendered.Result.Document.String()
		if html {
			output = markdown.ToHTML(output)
		}
		sb.WriteString(strings.TrimSpace(output))
		sb.WriteString("\n")
	}
	return sb.String()
}
