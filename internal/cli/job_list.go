package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	list := &cobra.Command{
		Use:   "list",
		Short: "Show the job list",
		Run:   runJobList,
	}
	list.Flags().IntP("limit", "l", 0, "Max rows (0 = all)")
	list.Flags().Bool("include-deleted", false, "Include soft-deleted jobs")
	list.Flags().Bool("json", false, "Output JSON instead of a text block")
	jobCmd.AddCommand(list)

	deleted := &cobra.Command{
		Use:   "list-deleted",
		Short: "Show soft-deleted jobs",
		Run:   runJobListDeleted,
	}
	deleted.Flags().IntP("limit", "l", 0, "Max rows (0 = all)")
	deleted.Flags().Bool("json", false, "Output JSON instead of a text block")
	jobCmd.AddCommand(deleted)

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show job list statistics",
		Run:   runJobStats,
	}
	jobCmd.AddCommand(stats)

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Wipe the job list and the imported-file record",
		Run:   runJobClear,
	}
	clear.Flags().Bool("yes", false, "Skip the confirmation")
	jobCmd.AddCommand(clear)
}

func runJobList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	includeDeleted, _ := cmd.Flags().GetBool("include-deleted")
	asJSON, _ := cmd.Flags().GetBool("json")

	reg, _ := openJobs()
	list := reg.List(limit, includeDeleted)

	if asJSON {
		b, _ := json.MarshalIndent(list, "", "  ")
		fmt.Println(string(b))
		return
	}

	s := reg.Stats()
	rule("Job list")
	fmt.Printf("total: %d  active: %d  deleted: %d\n", s.TotalJobs, s.ActiveJobs, s.DeletedJobs)
	if len(s.CSVFiles) > 0 {
		fmt.Println("\nimported files:")
		for i, f := range s.CSVFiles {
			fmt.Printf("  %d. %s\n", i+1, f)
		}
	}
	if len(list) == 0 {
		fmt.Println("\njob list is empty")
		return
	}
	fmt.Printf("\nshowing %d job(s):\n", len(list))
	thinRule()
	for i, job := range list {
		printJob(strconv.Itoa(i), job)
	}
}

func runJobListDeleted(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	reg, _ := openJobs()
	list := reg.Deleted(limit)

	if asJSON {
		b, _ := json.MarshalIndent(list, "", "  ")
		fmt.Println(string(b))
		return
	}

	rule("Deleted jobs")
	if len(list) == 0 {
		fmt.Println("no deleted jobs")
		return
	}
	fmt.Printf("showing %d job(s):\n", len(list))
	thinRule()
	for i, job := range list {
		printJob(strconv.Itoa(i), job)
	}
	fmt.Println("\nuse 'job restore --index <n>' to bring one back")
}

func runJobStats(cmd *cobra.Command, args []string) {
	reg, _ := openJobs()
	b, _ := json.MarshalIndent(reg.Stats(), "", "  ")
	fmt.Println(string(b))
}

func runJobClear(cmd *cobra.Command, args []string) {
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		fail("refusing to wipe the job list without --yes")
	}
	reg, _ := openJobs()
	if err := reg.ClearAll(); err != nil {
		fail("%v", err)
	}
	fmt.Println("[OK] job list cleared")
}
