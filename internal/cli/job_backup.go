package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Copy the job list file to a timestamped backup",
		Run:   runJobBackup,
	}
	cmd.Flags().StringP("dir", "d", "", "Backup directory (default: 'backups' next to the job file)")
	jobCmd.AddCommand(cmd)
}

func runJobBackup(cmd *cobra.Command, args []string) {
	dir, _ := cmd.Flags().GetString("dir")

	reg, cfg := openJobs()
	if dir == "" {
		dir = cfg.BackupDir
	}

	path, err := reg.Backup(dir)
	if err != nil {
		fail("%v", err)
	}

	rule("Backup")
	fmt.Printf("[OK] backup written: %s\n", path)
	if info, err := os.Stat(path); err == nil {
		fmt.Printf("  size: %d bytes\n", info.Size())
	}
}
