package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jchen89/taskdesk/internal/model"
	"github.com/jchen89/taskdesk/internal/schedule"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a schedule slot",
		Long:  "Creates a slot. Start and end accept YYYY-MM-DD or \"YYYY-MM-DD HH:MM\"; the end may not precede the start.",
		Run:   runScheduleAdd,
	}
	cmd.Flags().StringP("start", "s", "", "Start time (required)")
	cmd.Flags().StringP("end", "e", "", "End time (required)")
	cmd.Flags().StringP("task", "t", "", "Task name (required)")
	cmd.Flags().String("status", "", "Status: completed, in_progress, not_started, shelved, postponed (default not_started)")
	cmd.Flags().String("description", "", "Description (\\n becomes a newline)")
	cmd.Flags().String("value", "", "Value note (\\n becomes a newline)")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	cmd.MarkFlagRequired("task")
	scheduleCmd.AddCommand(cmd)
}

func runScheduleAdd(cmd *cobra.Command, args []string) {
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	task, _ := cmd.Flags().GetString("task")
	status, _ := cmd.Flags().GetString("status")
	description, _ := cmd.Flags().GetString("description")
	value, _ := cmd.Flags().GetString("value")

	reg, _ := openSchedules()
	s, err := reg.Add(schedule.AddParams{
		Start:       start,
		End:         end,
		Task:        task,
		Status:      model.Status(status),
		Description: strings.ReplaceAll(description, `\n`, "\n"),
		ValueNote:   strings.ReplaceAll(value, `\n`, "\n"),
	})
	if err != nil {
		fail("%v", err)
	}

	rule("Add schedule")
	fmt.Println("[OK] slot created")
	printSchedule(s)
}
