package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/agent"
	"github.com/royjoydeep348/custom-agent-with-skills/pkg/presenter"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Run: func(cmd *cobra.Command, _ []string) {
		chatRun(cmd)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// consoleHandler renders thread events to the terminal
type consoleHandler struct{}

func (consoleHandler) HandleText(text string) {
	fmt.Println(text)
}

func (consoleHandler) HandleToolUse(toolName, input string) {
	presenter.Info(color.YellowString("→ using tool %s: %s", toolName, truncate(input, 120)))
}

func (consoleHandler) HandleToolResult(toolName, result string) {
	presenter.Info(color.YellowString("← %s returned %d bytes", toolName, len(result)))
}

func (consoleHandler) HandleDone() {}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func chatRun(cmd *cobra.Command) {
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

	deps := a.Dependencies()
	presenter.Section("skillagent")
	presenter.Info(fmt.Sprintf("Provider: %s | Model: %s", cfg.Provider, cfg.Model))
	presenter.Info(fmt.Sprintf("Skills: %s", strings.Join(deps.Registry.Names(), ", ")))
	presenter.Info("Type 'exit' or 'quit' to leave.")
	presenter.Separator()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.CyanString("you> "))
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		if _, err := a.Run(ctx, input, consoleHandler{}); err != nil {
			presenter.Error(err, "agent turn failed")
		}
		presenter.Separator()
	}
}
