package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-quizwriter/internal/core"
	"github.com/julien-sobczak/the-quizwriter/internal/quiz"
)

var verboseInfo bool
var verboseDebug bool
var verboseTrace bool

var parallel int

// Policy overrides
var mode string
var hidden int

var rootCmd = &cobra.Command{
	Use:   "ntq",
	Short: "The QuizWriter turns Markdown notes into fill-in-the-blank quizzes",
	Long:  `Render Markdown notes where [answers] are hidden or revealed, the same way on every run.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Enable verbose output. The most verbose level wins when multiple flags are passsed.
		if verboseInfo {
			core.CurrentLogger().SetVerboseLevel(core.VerboseInfo)
		}
		if verboseDebug {
			core.CurrentLogger().SetVerboseLevel(core.VerboseDebug)
		}
		if verboseTrace {
			core.CurrentLogger().SetVerboseLevel(core.VerboseTrace)
		}

		if parallel > 0 {
			core.CurrentConfig().SetParallel(parallel)
		}
		CheckConfig()
	},
}

func init() {
	// Use PersistentFlags to make flags accessible to sub-commands
	rootCmd.PersistentFlags().BoolVarP(&verboseInfo, "v", "", false, "enable verbose info output")
	rootCmd.PersistentFlags().BoolVarP(&verboseDebug, "vv", "", false, "enable verbose debug output")
	rootCmd.PersistentFlags().BoolVarP(&verboseTrace, "vvv", "", false, "enable verbose trace output")
	rootCmd.PersistentFlags().IntVarP(&parallel, "parallel", "t", 0, "Number of notes rendered concurrently")
	rootCmd.PersistentFlags().StringVarP(&mode, "mode", "m", "", "override the mode. Allowed: input, read")
	rootCmd.PersistentFlags().IntVarP(&hidden, "hidden", "p", -1, "override the percentage of hidden answers (0-100)")
}

func CheckConfig() {
	err := core.CurrentConfig().Check()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newRenderer creates a renderer from the configuration and the command-line overrides.
func newRenderer() *core.Renderer {
	config := core.CurrentConfig()
	opts := []func(*core.Renderer){
		core.WithParallel(config.ConfigFile.Core.Parallel),
	}
	if mode != "" {
		m, err := quiz.ParseMode(mode)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		opts = append(opts, core.WithMode(m))
	}
	if hidden >= 0 {
		if hidden > 100 {
			fmt.Printf("Invalid percentage %d\n", hidden)
			os.Exit(1)
		}
		opts = append(opts, core.WithHiddenPercent(hidden))
	}
	return core.NewRenderer(config.Policy(), opts...)
}

func Execute() {
	defer core.CurrentLogger().Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
