package cli

import (
	"github.com/spf13/cobra"

	"github.com/jchen89/taskdesk/internal/jobs"
	"github.com/jchen89/taskdesk/internal/model"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage the job list",
}

func init() {
	RootCmd.AddCommand(jobCmd)
}

// resolveJobKey turns --index/--key flags into an identity key. Indices
// address the freshly computed filtered view and are resolved to a key
// immediately, never cached.
func resolveJobKey(reg *jobs.Registry, cmd *cobra.Command, includeDeleted bool) (string, bool) {
	key, _ := cmd.Flags().GetString("key")
	index, _ := cmd.Flags().GetInt("index")
	if index >= 0 {
		job, err := reg.FindByIndex(index, includeDeleted)
		if err != nil {
			return "", false
		}
		return job.Key(), true
	}
	if key != "" {
		return key, true
	}
	return "", false
}

func addJobRefFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("index", "i", -1, "Row number in the last printed list")
	cmd.Flags().StringP("key", "k", "", "Identity key (link, or title|timestamp)")
}

func jobLabel(job model.Job) string {
	if t := job.Title(); t != "" {
		return t
	}
	return "(untitled)"
}
