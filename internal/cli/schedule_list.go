package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jchen89/taskdesk/internal/model"
	"github.com/jchen89/taskdesk/internal/schedule"
)

func init() {
	list := &cobra.Command{
		Use:   "list",
		Short: "Show the schedule, ascending by start time",
		Run:   runScheduleList,
	}
	list.Flags().IntP("limit", "l", 0, "Max rows (0 = all)")
	list.Flags().String("status", "", "Filter by status")
	list.Flags().String("from", "", "Keep slots starting on or after this date (YYYY-MM-DD)")
	list.Flags().String("to", "", "Keep slots ending on or before this date (YYYY-MM-DD)")
	list.Flags().Bool("include-deleted", false, "Include soft-deleted slots")
	list.Flags().Bool("json", false, "Output JSON instead of a text block")
	scheduleCmd.AddCommand(list)

	history := &cobra.Command{
		Use:   "history",
		Short: "Show slots that ended recently, most recent first",
		Run:   runScheduleHistory,
	}
	history.Flags().Int("days", 7, "How many days back to look")
	history.Flags().Bool("json", false, "Output JSON instead of a text block")
	scheduleCmd.AddCommand(history)

	future := &cobra.Command{
		Use:   "future",
		Short: "Show slots that have not started yet",
		Run: func(cmd *cobra.Command, args []string) {
			reg, _ := openSchedules()
			printScheduleView(cmd, "Future slots", reg.Future())
		},
	}
	future.Flags().Bool("json", false, "Output JSON instead of a text block")
	scheduleCmd.AddCommand(future)

	current := &cobra.Command{
		Use:   "current",
		Short: "Show slots whose window contains now",
		Run: func(cmd *cobra.Command, args []string) {
			reg, _ := openSchedules()
			printScheduleView(cmd, "In progress", reg.InProgress())
		},
	}
	current.Flags().Bool("json", false, "Output JSON instead of a text block")
	scheduleCmd.AddCommand(current)

	expired := &cobra.Command{
		Use:   "expired",
		Short: "Show not-completed slots whose end has passed",
		Run: func(cmd *cobra.Command, args []string) {
			reg, _ := openSchedules()
			printScheduleView(cmd, "Expired slots", reg.Expired())
		},
	}
	expired.Flags().Bool("json", false, "Output JSON instead of a text block")
	scheduleCmd.AddCommand(expired)

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show schedule statistics",
		Run: func(cmd *cobra.Command, args []string) {
			reg, _ := openSchedules()
			b, _ := json.MarshalIndent(reg.Stats(), "", "  ")
			fmt.Println(string(b))
		},
	}
	scheduleCmd.AddCommand(stats)
}

func runScheduleList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	status, _ := cmd.Flags().GetString("status")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	includeDeleted, _ := cmd.Flags().GetBool("include-deleted")
	asJSON, _ := cmd.Flags().GetBool("json")

	reg, _ := openSchedules()
	list := reg.List(schedule.ListParams{
		Limit:          limit,
		Status:         model.Status(status),
		StartDate:      from,
		EndDate:        to,
		IncludeDeleted: includeDeleted,
	})

	if asJSON {
		b, _ := json.MarshalIndent(list, "", "  ")
		fmt.Println(string(b))
		return
	}

	s := reg.Stats()
	rule("Schedule")
	fmt.Printf("total: %d  completed: %d  in progress: %d  not started: %d\n",
		s.Total, s.Completed, s.InProgress, s.NotStarted)
	if len(list) == 0 {
		fmt.Println("\nschedule is empty")
		return
	}
	fmt.Printf("\nshowing %d slot(s):\n", len(list))
	thinRule()
	for _, sl := range list {
		printSchedule(sl)
	}
}

func runScheduleHistory(cmd *cobra.Command, args []string) {
	days, _ := cmd.Flags().GetInt("days")
	asJSON, _ := cmd.Flags().GetBool("json")

	reg, _ := openSchedules()
	list := reg.History(days)

	if asJSON {
		b, _ := json.MarshalIndent(list, "", "  ")
		fmt.Println(string(b))
		return
	}

	rule("History")
	fmt.Printf("slots that ended within the last %d day(s): %d\n", days, len(list))
	if len(list) == 0 {
		return
	}

	counts := map[model.Status]int{}
	for _, s := range list {
		counts[s.Status]++
	}
	fmt.Println("\nby status:")
	for _, st := range model.Statuses {
		if counts[st] > 0 {
			fmt.Printf("  %s: %d\n", st, counts[st])
		}
	}
	thinRule()
	for _, s := range list {
		printSchedule(s)
	}
}

func printScheduleView(cmd *cobra.Command, title string, list []*model.Schedule) {
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		b, _ := json.MarshalIndent(list, "", "  ")
		fmt.Println(string(b))
		return
	}
	rule(title)
	if len(list) == 0 {
		fmt.Println("nothing here")
		return
	}
	for _, s := range list {
		printSchedule(s)
	}
}
