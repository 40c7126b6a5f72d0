package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jchen89/taskdesk/internal/schedule"
)

func init() {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Interactively review the schedule and generate new slots",
		Long:  "Walks through pending, in-progress, and expired slots for triage, then optionally lays out a run of equal-duration slots covering a requested total.",
		Run:   runScheduleGen,
	}
	scheduleCmd.AddCommand(cmd)
}

func runScheduleGen(cmd *cobra.Command, args []string) {
	reg, _ := openSchedules()
	planner := schedule.NewPlanner(reg, os.Stdin, os.Stdout)
	if err := planner.Run(); err != nil {
		fail("%v", err)
	}
}
