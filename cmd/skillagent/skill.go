package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/royjoydeep348/custom-agent-with-skills/pkg/presenter"
	"github.com/royjoydeep348/custom-agent-with-skills/pkg/skills"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Inspect the skills directory without starting a session",
}

// skillRegistry builds and discovers a registry from config and flags.
// It does not require provider credentials.
func skillRegistry(cmd *cobra.Command) (*skills.Registry, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)

	registry := skills.NewRegistry(cfg.SkillsDir)
	registry.Discover(cmd.Context())
	return registry, nil
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered skills",
	Run: func(cmd *cobra.Command, _ []string) {
		registry, err := skillRegistry(cmd)
		if err != nil {
			presenter.Error(err, "failed to load configuration")
			os.Exit(1)
		}

		names := registry.Names()
		if len(names) == 0 {
			presenter.Info(fmt.Sprintf("No skills found in '%s'.", registry.RootDir()))
			return
		}

		discovered := registry.Skills()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tVERSION\tDESCRIPTION")
		for _, name := range names {
			s := discovered[name]
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Version, s.Description)
		}
		w.Flush()
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show one skill's metadata and instructions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := skillRegistry(cmd)
		if err != nil {
			presenter.Error(err, "failed to load configuration")
			os.Exit(1)
		}

		skill, err := registry.Get(args[0])
		if err != nil {
			presenter.Error(err, "")
			os.Exit(1)
		}

		meta, err := yaml.Marshal(skill)
		if err != nil {
			presenter.Error(err, "failed to render skill metadata")
			os.Exit(1)
		}

		instructions, err := registry.LoadInstructions(cmd.Context(), skill.Name)
		if err != nil {
			presenter.Error(err, "")
			os.Exit(1)
		}

		presenter.Section(skill.Name)
		fmt.Print(string(meta))
		presenter.Separator()
		fmt.Println(instructions)
	},
}

var skillFilesCmd = &cobra.Command{
	Use:   "files [name]",
	Short: "List a skill's resource files",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry, err := skillRegistry(cmd)
		if err != nil {
			presenter.Error(err, "failed to load configuration")
			os.Exit(1)
		}

		listing, err := registry.ListResources(cmd.Context(), args[0], "")
		if err != nil {
			presenter.Error(err, "")
			os.Exit(1)
		}
		fmt.Println(listing)
	},
}

func init() {
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
	skillCmd.AddCommand(skillFilesCmd)
	rootCmd.AddCommand(skillCmd)
}
