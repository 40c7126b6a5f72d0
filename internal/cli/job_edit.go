package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jchen89/taskdesk/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a job's fields, tags, or summary",
		Run:   runJobEdit,
	}
	addJobRefFlags(cmd)
	cmd.Flags().String("field", "", "Field name to set (with --value)")
	cmd.Flags().String("value", "", "Value for --field")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("add-tag", "", "Tag to add")
	cmd.Flags().String("remove-tag", "", "Tag to remove")
	cmd.Flags().String("summary", "", "New summary (\\n becomes a newline)")
	cmd.Flags().String("summary-file", "", "Read the new summary from a file")
	jobCmd.AddCommand(cmd)
}

func runJobEdit(cmd *cobra.Command, args []string) {
	reg, _ := openJobs()

	key, ok := resolveJobKey(reg, cmd, false)
	if !ok {
		fail("job not found; provide --index or --key")
	}
	job, err := reg.Find(key, true)
	if err != nil {
		fail("job not found")
	}

	rule("Edit job")
	fmt.Println("current:")
	printJob("*", job)
	thinRule()

	field, _ := cmd.Flags().GetString("field")
	value, _ := cmd.Flags().GetString("value")
	title, _ := cmd.Flags().GetString("title")
	addTag, _ := cmd.Flags().GetString("add-tag")
	removeTag, _ := cmd.Flags().GetString("remove-tag")
	summary, _ := cmd.Flags().GetString("summary")
	summaryFile, _ := cmd.Flags().GetString("summary-file")

	switch {
	case addTag != "":
		job, err = reg.AddTag(key, addTag)
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("[OK] tag added: %s\n", addTag)
		fmt.Printf("  tags: %s\n", job.Tags())

	case removeTag != "":
		job, err = reg.RemoveTag(key, removeTag)
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("[OK] tag removed: %s\n", removeTag)
		fmt.Printf("  tags: %s\n", job.Tags())

	case summaryFile != "":
		data, err := os.ReadFile(summaryFile)
		if err != nil {
			fail("read summary file: %v", err)
		}
		job, err = reg.Update(key, map[string]any{model.FieldSummary: string(data)})
		if err != nil {
			fail("%v", err)
		}
		fmt.Println("[OK] summary updated")
		printField("summary", job.Summary())

	case cmd.Flags().Changed("summary"):
		text := strings.ReplaceAll(summary, `\n`, "\n")
		job, err = reg.Update(key, map[string]any{model.FieldSummary: text})
		if err != nil {
			fail("%v", err)
		}
		fmt.Println("[OK] summary updated")
		printField("summary", job.Summary())

	case title != "":
		job, err = reg.Update(key, map[string]any{model.FieldTitle: title})
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("[OK] title updated: %s\n", job.Title())

	case field != "" && value != "":
		job, err = reg.Update(key, map[string]any{field: value})
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("[OK] %s updated\n", field)

	default:
		fail("nothing to do; provide --field/--value, --title, --summary, --add-tag, or --remove-tag")
	}
}
