package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	analytics "github.com/ariahq/aria/internal/analytics/domain"
)

var (
	trendDays       int
	correlationDays int
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Productivity trend over the trailing days",
	RunE: func(cmd *cobra.Command, args []string) error {
		trend, err := container.Analytics.GetTrend(cmd.Context(), trendDays)
		if err != nil {
			return err
		}

		fmt.Printf("trailing %d days\n", trend.Days)
		fmt.Printf("  score       %s\n", fmtPtr(trend.AvgProductivity))
		fmt.Printf("  mood        %s\n", fmtPtr(trend.AvgMood))
		fmt.Printf("  completion  %s\n", fmtPtr(trend.AvgCompletionRate))
		fmt.Printf("  focus       %s h/day\n", fmtPtr(trend.AvgFocusHours))
		fmt.Printf("  mood/score  %s\n", fmtPtr(trend.MoodProductivityCorrelation))

		for _, day := range trend.Daily {
			if !day.HasProductivity() && !day.HasMood() {
				continue
			}
			fmt.Printf("  %s  score %-5s  mood %-5s  %d/%d tasks\n",
				day.Date.Format("2006-01-02"),
				fmtPtr(day.ProductivityScore), fmtPtr(day.MoodScore),
				day.TasksCompleted, day.TasksPlanned)
		}
		return nil
	},
}

var correlationCmd = &cobra.Command{
	Use:   "correlation",
	Short: "Mood vs. productivity correlation report",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := container.Analytics.GetMoodProductivityCorrelation(cmd.Context(), correlationDays)
		if err != nil {
			return err
		}

		if report.Strength == analytics.StrengthInsufficient {
			fmt.Printf("not enough data over %d days (%d samples, need 2)\n", report.Days, report.SampleSize)
			return nil
		}

		fmt.Printf("mood vs. productivity over %d days (%d samples)\n", report.Days, report.SampleSize)
		fmt.Printf("  r          %s (%s, %s)\n", fmtPtr(report.Coefficient), report.Strength, report.Direction)
		fmt.Printf("  high mood  %s (%d days)\n", fmtPtr(report.HighMoodProductivity), report.HighMoodDays)
		fmt.Printf("  low mood   %s (%d days)\n", fmtPtr(report.LowMoodProductivity), report.LowMoodDays)
		if report.Insight != "" {
			fmt.Printf("  %s\n", report.Insight)
		}
		return nil
	},
}

func init() {
	trendCmd.Flags().IntVar(&trendDays, "days", 7, "window size in days")
	correlationCmd.Flags().IntVar(&correlationDays, "days", 30, "window size in days")

	rootCmd.AddCommand(trendCmd, correlationCmd)
}
