package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
)

// testCmd runs the test suite instead of starting the server.
var testCmd = &cobra.Command{
	Use:   "test [package]",
	Short: "Run the test suite",
	Long: `Runs "go test" over every package, or only over the given package
directory (e.g. "feature/greeting").`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTests(cmd.Context(), args)
	},
}

func init() {
	RootCmd.AddCommand(testCmd)
}

// testArgs builds the "go test" arguments for an optional package directory.
func testArgs(args []string) []string {
	pattern := "./..."
	if len(args) > 0 && strings.Trim(args[0], "./") != "" {
		pattern = "./" + strings.Trim(args[0], "./") + "/..."
	}
	return []string{"test", pattern}
}

func runTests(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	c := exec.CommandContext(ctx, "go", testArgs(args)...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("at least one test has failed: %w", err)
	}

	fmt.Println("All tests have passed")
	return nil
}
