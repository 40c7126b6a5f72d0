package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jchen89/taskdesk/internal/model"
)

func init() {
	del := &cobra.Command{
		Use:   "delete",
		Short: "Soft-delete a job",
		Long:  "Marks a job deleted without removing it from storage. Restore with 'job restore'.",
		Run:   runJobDelete,
	}
	addJobRefFlags(del)
	jobCmd.AddCommand(del)

	restore := &cobra.Command{
		Use:   "restore",
		Short: "Restore a soft-deleted job",
		Long:  "Clears the delete markers on a soft-deleted job. --index addresses the list printed by 'job list-deleted'.",
		Run:   runJobRestore,
	}
	restore.Flags().IntP("index", "i", -1, "Row number in the deleted list")
	restore.Flags().StringP("key", "k", "", "Identity key (link, or title|timestamp)")
	jobCmd.AddCommand(restore)
}

func runJobDelete(cmd *cobra.Command, args []string) {
	reg, _ := openJobs()

	key, ok := resolveJobKey(reg, cmd, false)
	if !ok {
		fail("job not found; provide --index or --key")
	}

	job, err := reg.SoftDelete(key)
	if err != nil {
		fail("%v", err)
	}

	rule("Delete job")
	fmt.Printf("[OK] deleted: %s\n", jobLabel(job))
	if at, ok := job[model.FieldDeletedAt].(string); ok {
		fmt.Printf("  deleted at: %s\n", at)
	}
	fmt.Println("\nuse 'job restore' to bring it back")
}

func runJobRestore(cmd *cobra.Command, args []string) {
	reg, _ := openJobs()

	key, _ := cmd.Flags().GetString("key")
	index, _ := cmd.Flags().GetInt("index")
	if index >= 0 {
		job, err := reg.FindDeletedByIndex(index)
		if err != nil {
			fail("no deleted job at index %d", index)
		}
		key = job.Key()
	}
	if key == "" {
		fail("provide --index or --key (see 'job list-deleted')")
	}

	job, err := reg.Restore(key)
	if err != nil {
		fail("%v", err)
	}

	rule("Restore job")
	fmt.Printf("[OK] restored: %s\n", jobLabel(job))
}
