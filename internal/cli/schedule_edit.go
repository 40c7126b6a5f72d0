package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jchen89/taskdesk/internal/model"
	"github.com/jchen89/taskdesk/internal/schedule"
)

func init() {
	edit := &cobra.Command{
		Use:   "edit",
		Short: "Edit a schedule slot",
		Long:  "Edits the addressed slot field by field. Endpoint edits are re-validated so the end never precedes the start.",
		Run:   runScheduleEdit,
	}
	addScheduleRefFlags(edit)
	edit.Flags().StringP("start", "s", "", "New start time")
	edit.Flags().StringP("end", "e", "", "New end time")
	edit.Flags().StringP("task", "t", "", "New task name")
	edit.Flags().String("status", "", "New status")
	edit.Flags().String("description", "", "New description (\\n becomes a newline)")
	edit.Flags().String("value", "", "New value note (\\n becomes a newline)")
	scheduleCmd.AddCommand(edit)

	extend := &cobra.Command{
		Use:   "extend",
		Short: "Push a slot's end time out and mark it postponed",
		Run:   runScheduleExtend,
	}
	addScheduleRefFlags(extend)
	extend.Flags().String("by", "", "Extension, e.g. \"1.5 hours\" or \"30 minutes\" (required)")
	extend.MarkFlagRequired("by")
	scheduleCmd.AddCommand(extend)
}

func runScheduleEdit(cmd *cobra.Command, args []string) {
	reg, _ := openSchedules()

	ref, ok := scheduleRef(cmd)
	if !ok {
		fail("provide --id or --index")
	}

	var p schedule.UpdateParams
	if cmd.Flags().Changed("start") {
		v, _ := cmd.Flags().GetString("start")
		p.Start = &v
	}
	if cmd.Flags().Changed("end") {
		v, _ := cmd.Flags().GetString("end")
		p.End = &v
	}
	if cmd.Flags().Changed("task") {
		v, _ := cmd.Flags().GetString("task")
		p.Task = &v
	}
	if cmd.Flags().Changed("status") {
		v, _ := cmd.Flags().GetString("status")
		st := model.Status(v)
		p.Status = &st
	}
	if cmd.Flags().Changed("description") {
		v, _ := cmd.Flags().GetString("description")
		text := strings.ReplaceAll(v, `\n`, "\n")
		p.Description = &text
	}
	if cmd.Flags().Changed("value") {
		v, _ := cmd.Flags().GetString("value")
		text := strings.ReplaceAll(v, `\n`, "\n")
		p.ValueNote = &text
	}

	s, err := reg.Update(ref, p)
	if err != nil {
		fail("%v", err)
	}

	rule("Edit schedule")
	fmt.Println("[OK] slot updated")
	printSchedule(s)
}

func runScheduleExtend(cmd *cobra.Command, args []string) {
	reg, _ := openSchedules()

	ref, ok := scheduleRef(cmd)
	if !ok {
		fail("provide --id or --index")
	}
	by, _ := cmd.Flags().GetString("by")
	minutes, err := schedule.ParseExtension(by)
	if err != nil {
		fail("%v", err)
	}

	s, err := reg.Extend(ref, minutes)
	if err != nil {
		fail("%v", err)
	}

	rule("Extend schedule")
	fmt.Printf("[OK] extended by %.0f minute(s), new end: %s\n", minutes, s.End)
	printSchedule(s)
}
