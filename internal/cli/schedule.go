package cli

import (
	"github.com/spf13/cobra"

	"github.com/jchen89/taskdesk/internal/schedule"
)

var scheduleCmd = &cobra.Command{
	Use:     "schedule",
	Aliases: []string{"sched"},
	Short:   "Manage the time-boxed schedule",
}

func init() {
	RootCmd.AddCommand(scheduleCmd)
}

func addScheduleRefFlags(cmd *cobra.Command) {
	cmd.Flags().Int("id", -1, "Schedule id")
	cmd.Flags().IntP("index", "i", -1, "Row number in the active list")
}

// scheduleRef turns --id/--index flags into a registry reference.
func scheduleRef(cmd *cobra.Command) (schedule.Ref, bool) {
	id, _ := cmd.Flags().GetInt("id")
	index, _ := cmd.Flags().GetInt("index")
	if id >= 0 {
		return schedule.ByID(id), true
	}
	if index >= 0 {
		return schedule.ByIndex(index), true
	}
	return schedule.Ref{ID: -1, Index: -1}, false
}
