package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var moodCmd = &cobra.Command{
	Use:   "mood [score] [note...]",
	Short: "Log today's mood (1-10) or show the latest entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if len(args) == 0 {
			entry, err := container.Tracking.GetTodayMood(ctx)
			if err != nil {
				return err
			}
			if entry == nil {
				fmt.Println("no mood logged today")
				return nil
			}
			fmt.Printf("mood %d/10 at %s", entry.Score, entry.CreatedAt.Format("15:04"))
			if entry.Text != "" {
				fmt.Printf("  %q", entry.Text)
			}
			fmt.Println()
			return nil
		}

		score, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid mood score %q, expected 1-10", args[0])
		}
		entry, err := container.Tracking.LogMood(ctx, score, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Printf("logged mood %d/10\n", entry.Score)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moodCmd)
}
