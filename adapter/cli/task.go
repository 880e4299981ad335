package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ariahq/aria/internal/tracking/domain"
)

var (
	taskPriority int
	taskDue      string
	taskStatus   string
	taskDuration int
	taskFocus    int
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		var due *time.Time
		if taskDue != "" {
			parsed, err := time.ParseInLocation("2006-01-02", taskDue, time.Local)
			if err != nil {
				return fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", taskDue)
			}
			due = &parsed
		}

		task, err := container.Tracking.CreateTask(cmd.Context(), title, taskPriority, due)
		if err != nil {
			return err
		}
		fmt.Printf("created %s  %s (priority %d)\n", task.ID, task.Title, task.Priority)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, ordered by focus score when mood is known",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		tasks, err := container.Tracking.ListTasks(ctx, domain.TaskStatus(taskStatus))
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			fmt.Println("no tasks")
			return nil
		}

		// Order by what deserves attention now, falling back to a neutral
		// mood when none was logged today.
		moodScore := 5.0
		if mood, err := container.Tracking.GetTodayMood(ctx); err == nil && mood != nil {
			moodScore = float64(mood.Score)
		}
		tasks = container.FocusEngine.OrderTasks(tasks, moodScore)

		for _, task := range tasks {
			score := container.FocusEngine.FocusScore(task, moodScore)
			due := "-"
			if task.DueDate != nil {
				due = task.DueDate.Format("2006-01-02")
			}
			fmt.Printf("%s  %-9s p%-2d due %-10s  %5.1f  %s\n",
				task.ID, task.Status, task.Priority, due, score, task.Title)
		}
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}
		task, err := container.Tracking.CompleteTask(cmd.Context(), id, taskDuration, taskFocus)
		if err != nil {
			return err
		}
		fmt.Printf("completed %s\n", task.Title)
		return nil
	},
}

var taskRemoveCmd = &cobra.Command{
	Use:     "rm <task-id>",
	Short:   "Delete a task",
	Aliases: []string{"remove", "delete"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}
		if err := container.Tracking.DeleteTask(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

var taskShowCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show a task and its completion history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}
		task, err := container.Tracking.GetTask(ctx, id)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n  status %s, priority %d\n", task.Title, task.Status, task.Priority)
		if task.DueDate != nil {
			fmt.Printf("  due %s\n", task.DueDate.Format("2006-01-02"))
		}

		history, err := container.Tracking.TaskHistory(ctx, id)
		if err != nil {
			return err
		}
		for _, completion := range history {
			fmt.Printf("  completed %s  %d min, focus %d/10\n",
				completion.CompletedAt.Format("2006-01-02 15:04"),
				completion.DurationMinutes, completion.FocusScore)
		}
		return nil
	},
}

func init() {
	taskAddCmd.Flags().IntVarP(&taskPriority, "priority", "p", 5, "priority 1-10")
	taskAddCmd.Flags().StringVar(&taskDue, "due", "", "due date (YYYY-MM-DD)")
	taskListCmd.Flags().StringVar(&taskStatus, "status", "", "filter by status (pending, completed, cancelled)")
	taskDoneCmd.Flags().IntVar(&taskDuration, "minutes", 0, "time spent in minutes")
	taskDoneCmd.Flags().IntVar(&taskFocus, "focus", 5, "self-reported focus 1-10")

	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskDoneCmd, taskRemoveCmd, taskShowCmd)
	rootCmd.AddCommand(taskCmd)
}
