package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jchen89/taskdesk/internal/notes"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Append quick notes to the notes file",
}

func init() {
	RootCmd.AddCommand(noteCmd)

	add := &cobra.Command{
		Use:   "add <words...>",
		Short: "Append a timestamped note",
		Long:  "Appends a timestamped entry to the configured notes file. Words starting with '#' become tags on the header line.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runNoteAdd,
	}
	noteCmd.AddCommand(add)

	path := &cobra.Command{
		Use:   "path",
		Short: "Show where notes are written",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			fmt.Println(cfg.NotesFile)
		},
	}
	noteCmd.AddCommand(path)
}

func runNoteAdd(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	entry, err := notes.Append(cfg.NotesFile, args, time.Now())
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("note appended to %s\n", cfg.NotesFile)
	fmt.Printf("  timestamp: %s\n", entry.Timestamp)
	if len(entry.Tags) > 0 {
		fmt.Printf("  tags: %s\n", strings.Join(entry.Tags, " "))
	}
}
