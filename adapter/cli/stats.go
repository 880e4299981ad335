package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsDate string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Productivity aggregates",
}

var statsDayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show a day's aggregate (default today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now()
		if statsDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", statsDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", statsDate)
			}
			date = parsed
		}

		day, err := container.Analytics.GetDailyAggregate(cmd.Context(), date)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", day.Date.Format("2006-01-02"))
		fmt.Printf("  tasks     %d/%d (%.0f%%)\n", day.TasksCompleted, day.TasksPlanned, day.CompletionRate*100)
		fmt.Printf("  score     %s\n", fmtPtr(day.ProductivityScore))
		fmt.Printf("  mood      %s\n", fmtPtr(day.MoodScore))
		fmt.Printf("  focus     %.1fh\n", day.FocusHours)
		return nil
	},
}

var statsWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the trailing 7-day aggregate",
	RunE: func(cmd *cobra.Command, args []string) error {
		weekStart := time.Now().AddDate(0, 0, -6)
		week, err := container.Analytics.GetWeeklyAggregate(cmd.Context(), weekStart)
		if err != nil {
			return err
		}
		fmt.Printf("week of %s\n", week.WeekStart.Format("2006-01-02"))
		fmt.Printf("  tasks       %d/%d\n", week.TasksCompleted, week.TasksPlanned)
		fmt.Printf("  completion  %s\n", fmtPtr(week.AvgCompletionRate))
		fmt.Printf("  score       %s\n", fmtPtr(week.AvgProductivity))
		fmt.Printf("  mood        %s\n", fmtPtr(week.AvgMood))
		fmt.Printf("  focus       %.1fh total, %.1fh/day\n", week.TotalFocusHours, week.AvgDailyFocusHours)
		return nil
	},
}

var statsMonthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show the current calendar month",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		month, err := container.Analytics.GetMonthlyAggregate(cmd.Context(), now.Year(), now.Month())
		if err != nil {
			return err
		}
		fmt.Printf("%s %d\n", month.Month, month.Year)
		fmt.Printf("  tasks   %d created, %d completed (%.0f%%)\n",
			month.TasksCreated, month.TasksCompleted, month.CompletionRate*100)
		fmt.Printf("  score   %s\n", fmtPtr(month.AvgProductivity))
		fmt.Printf("  mood    %s\n", fmtPtr(month.AvgMood))
		fmt.Printf("  focus   %.1fh\n", month.TotalFocusHours)
		return nil
	},
}

var statsScoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Recompute today's productivity score",
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := container.Analytics.CalculateProductivity(cmd.Context(), time.Now(), "")
		if err != nil {
			return err
		}
		fmt.Printf("productivity %.1f/100 (%d/%d tasks, mood %s)\n",
			entry.Score, entry.TasksCompleted, entry.TasksTotal, fmtPtr(entry.AvgMoodScore))
		return nil
	},
}

func init() {
	statsDayCmd.Flags().StringVar(&statsDate, "date", "", "date (YYYY-MM-DD), default today")

	statsCmd.AddCommand(statsDayCmd, statsWeekCmd, statsMonthCmd, statsScoreCmd)
	rootCmd.AddCommand(statsCmd)
}
