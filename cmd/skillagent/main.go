package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/config"
	"github.com/royjoydeep348/custom-agent-with-skills/pkg/logger"
	"github.com/royjoydeep348/custom-agent-with-skills/pkg/presenter"
)

var rootCmd = &cobra.Command{
	Use:   "skillagent",
	Short: "A skill-based conversational agent",
	Long: `skillagent is a conversational agent that loads capabilities from a
directory of skills. Each skill is a folder with a SKILL.md declaration
and optional reference files, disclosed to the model progressively:
summaries up front, full instructions and files only on demand.`,
	Run: func(cmd *cobra.Command, _ []string) {
		chatRun(cmd)
	},
}

// loadConfig loads settings and applies logging options; every command
// calls it before doing work.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if err := logger.SetLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	logger.SetLogFormat(cfg.LogFormat)

	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().String("skills-dir", "", "Override the skills directory")
}

// applyFlags folds command-line flags into the loaded config
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if quiet, err := cmd.Flags().GetBool("quiet"); err == nil && quiet {
		presenter.SetQuiet(true)
	}
	if dir, err := cmd.Flags().GetString("skills-dir"); err == nil && dir != "" {
		cfg.SkillsDir = dir
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		presenter.Error(err, "")
		os.Exit(1)
	}
}
