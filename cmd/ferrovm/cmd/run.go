package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ferrovm/ferrovm/internal/demos"
	"github.com/ferrovm/ferrovm/internal/engine"
)

var runCmd = &cobra.Command{
	Use:   "run [demo]",
	Short: "Run one of the built-in demo programs",
	Long: fmt.Sprintf(`Build and execute one of the built-in demo programs.

Available demos: %s

Examples:
  ferrovm run echo
  ferrovm run sieve`, strings.Join(demos.Names, ", ")),
	Args: cobra.ExactArgs(1),
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runDemo(_ *cobra.Command, args []string) error {
	prog, err := demos.Build(args[0])
	if err != nil {
		return err
	}

	interp := engine.New(prog)
	if err := interp.Execute(); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	return nil
}
