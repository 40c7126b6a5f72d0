package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a schedule slot",
		Long:  "Removes the addressed slot. By default the record is deleted outright; --soft marks it deleted but keeps it in storage.",
		Run:   runScheduleDelete,
	}
	addScheduleRefFlags(cmd)
	cmd.Flags().Bool("soft", false, "Soft-delete instead of removing the record")
	cmd.Flags().Bool("all-future", false, "Soft-delete every slot that has not ended yet")
	scheduleCmd.AddCommand(cmd)
}

func runScheduleDelete(cmd *cobra.Command, args []string) {
	soft, _ := cmd.Flags().GetBool("soft")
	allFuture, _ := cmd.Flags().GetBool("all-future")

	reg, _ := openSchedules()

	if allFuture {
		count, err := reg.SoftDeleteFuture()
		if err != nil {
			fail("%v", err)
		}
		rule("Delete schedule")
		fmt.Printf("[OK] soft-deleted %d future slot(s)\n", count)
		return
	}

	ref, ok := scheduleRef(cmd)
	if !ok {
		fail("provide --id or --index")
	}

	rule("Delete schedule")
	if soft {
		s, err := reg.SoftDelete(ref)
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("[OK] soft-deleted slot %d (%s)\n", s.ID, s.Task)
		return
	}
	if err := reg.Delete(ref); err != nil {
		fail("%v", err)
	}
	fmt.Println("[OK] slot deleted")
}
