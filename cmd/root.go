package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "dropdown",
	Short: "A reusable dropdown/select control for terminal interfaces",
	Long: `dropdown - a single-select control for Bubble Tea programs: a trigger line
that reveals a menu of options with keyboard navigation, outside-click
dismissal, error display, and a filter display mode.

Run "dropdown demo" for an interactive tour, or "dropdown guide" for
integration documentation.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)
}

func initBaseDir() {
	var err error
	baseDir, err = os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine home directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the directory holding the demo profile
func getBaseDir() string {
	return baseDir
}
