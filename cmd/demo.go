package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/dropdown/internal/config"
	"github.com/marcus/dropdown/internal/demo"
)

var demoSetup bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive demo form",
	Long: `Launches a settings form with several dropdown controls: a regular
single-select, an outlined filter-mode select, and a required field with an
external validation error. Options, placeholder, and variant come from the
saved profile; pass --setup to edit the profile first.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().BoolVar(&demoSetup, "setup", false, "edit the demo profile before launching")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("demo requires an interactive terminal")
	}

	profile, err := config.Load(getBaseDir())
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	if demoSetup {
		if err := runSetup(profile); err != nil {
			return err
		}
		if err := config.Save(getBaseDir(), profile); err != nil {
			return fmt.Errorf("saving profile: %w", err)
		}
	}

	p := tea.NewProgram(demo.New(profile), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running demo: %w", err)
	}
	return nil
}

// runSetup collects profile edits in a short form.
func runSetup(profile *config.Profile) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Placeholder").
				Description("Shown before a selection is committed").
				Value(&profile.Placeholder),
			huh.NewSelect[string]().
				Title("Variant").
				Options(huh.NewOptions("regular", "outlined")...).
				Value(&profile.Variant),
		),
	).Run()
}
