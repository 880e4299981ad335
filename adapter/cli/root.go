// Package cli implements the aria command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariahq/aria/internal/app"
)

var (
	container *app.Container
	logger    *slog.Logger
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "aria",
	Short: "Aria - personal productivity analytics",
	Long: `Aria tracks tasks, mood, and focused work, then derives productivity
scores, trends, and prioritized task orderings from them.`,
	SilenceUsage: true,
}

// SetContainer installs the wired application for the command handlers.
func SetContainer(c *app.Container) {
	container = c
	logger = c.Logger
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func fmtPtr(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}
