package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ariahq/aria/internal/tracking/domain"
)

var (
	focusTaskID string
	focusNotes  string
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Track focused work sessions",
}

var focusStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a focus session",
	RunE: func(cmd *cobra.Command, args []string) error {
		var taskID *uuid.UUID
		if focusTaskID != "" {
			id, err := uuid.Parse(focusTaskID)
			if err != nil {
				return fmt.Errorf("invalid task id %q", focusTaskID)
			}
			taskID = &id
		}

		session, err := container.Analytics.StartFocusSession(cmd.Context(), taskID)
		if errors.Is(err, domain.ErrActiveSessionExists) {
			return fmt.Errorf("a focus session is already running; end it first with 'aria focus end'")
		}
		if err != nil {
			return err
		}
		fmt.Printf("focus session started at %s\n", session.StartedAt.Format("15:04"))
		return nil
	},
}

var focusEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the running focus session",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := container.Analytics.EndFocusSession(cmd.Context(), focusNotes)
		if err != nil {
			return err
		}
		if session == nil {
			fmt.Println("no focus session is running")
			return nil
		}
		fmt.Printf("focused for %.1f minutes\n", *session.DurationMinutes)
		return nil
	},
}

var focusHoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Show tracked focus hours for today and this week",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		now := time.Now()

		today, err := container.Analytics.DailyFocusHours(ctx, now)
		if err != nil {
			return err
		}
		weekStart := now.AddDate(0, 0, -6)
		week, err := container.Analytics.WeeklyFocusHours(ctx, weekStart)
		if err != nil {
			return err
		}

		var total float64
		for i := 0; i < 7; i++ {
			date := weekStart.AddDate(0, 0, i).Format("2006-01-02")
			hours := week[date]
			total += hours
			if hours > 0 {
				fmt.Printf("  %s  %.1fh\n", date, hours)
			}
		}
		fmt.Printf("today %.1fh, trailing week %.1fh\n", today, total)
		return nil
	},
}

func init() {
	focusStartCmd.Flags().StringVar(&focusTaskID, "task", "", "bind the session to a task")
	focusEndCmd.Flags().StringVar(&focusNotes, "notes", "", "session notes")

	focusCmd.AddCommand(focusStartCmd, focusEndCmd, focusHoursCmd)
	rootCmd.AddCommand(focusCmd)
}
