package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/agent"
	"github.com/royjoydeep348/custom-agent-with-skills/pkg/presenter"
)

// oneShotHandler suppresses intermediate assistant text so the final
// answer is printed exactly once, on stdout. Tool activity still goes
// through the presenter and honors quiet mode.
type oneShotHandler struct{}

func (oneShotHandler) HandleText(string) {}

func (oneShotHandler) HandleToolUse(toolName, input string) {
	presenter.Info(color.YellowString("→ using tool %s: %s", toolName, truncate(input, 120)))
}

func (oneShotHandler) HandleToolResult(toolName, result string) {
	presenter.Info(color.YellowString("← %s returned %d bytes", toolName, len(result)))
}

func (oneShotHandler) HandleDone() {}

var runCmd = &cobra.Command{
	Use:   "run [query]",
	Short: "Run a one-shot query and print the result",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			presenter.Error(err, "failed to load configuration")
			os.Exit(1)
		}
		applyFlags(cmd, cfg)

		if err := cfg.Validate(); err != nil {
			presenter.Error(err, "invalid configuration")
			os.Exit(1)
		}

		a, err := agent.New(ctx, cfg)
		if err != nil {
			presenter.Error(err, "failed to initialize agent")
			os.Exit(1)
		}

		query := strings.Join(args, " ")
		output, err := a.Run(ctx, query, oneShotHandler{})
		if err != nil {
			presenter.Error(err, "agent run failed")
			os.Exit(1)
		}

		fmt.Println(output)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
