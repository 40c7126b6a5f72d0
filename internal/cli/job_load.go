package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "load <csv-file>",
		Short: "Import a CSV export into the job list",
		Long:  "Parses a CSV export and merges its rows into the job list, skipping rows whose identity key already exists. A file path is only ever imported once.",
		Args:  cobra.ExactArgs(1),
		Run:   runJobLoad,
	}
	jobCmd.AddCommand(cmd)
}

func runJobLoad(cmd *cobra.Command, args []string) {
	reg, _ := openJobs()

	stats, err := reg.ImportCSV(args[0])
	if err != nil {
		fail("%v", err)
	}

	rule("Import result")
	fmt.Printf("file: %s\n", args[0])
	fmt.Printf("added: %d\n", stats.Added)
	fmt.Printf("skipped (duplicate): %d\n", stats.Skipped)
	fmt.Printf("total rows: %d\n", stats.Total)

	s := reg.Stats()
	fmt.Printf("\njob list now has %d job(s) from %d file(s)\n", s.TotalJobs, len(s.CSVFiles))
}
