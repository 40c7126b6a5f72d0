package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jchen89/taskdesk/internal/schedule"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search schedule slots",
		Long:  "Criteria are OR-merged: a slot matches if any provided one matches. A bare keyword spans task, description, and value note.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runScheduleSearch,
	}
	cmd.Flags().String("task", "", "Task substring")
	cmd.Flags().String("description", "", "Description substring")
	cmd.Flags().String("value", "", "Value note substring")
	cmd.Flags().Bool("case-sensitive", false, "Match case exactly")
	cmd.Flags().Bool("json", false, "Output JSON instead of a text block")
	scheduleCmd.AddCommand(cmd)
}

func runScheduleSearch(cmd *cobra.Command, args []string) {
	task, _ := cmd.Flags().GetString("task")
	description, _ := cmd.Flags().GetString("description")
	value, _ := cmd.Flags().GetString("value")
	caseSensitive, _ := cmd.Flags().GetBool("case-sensitive")
	asJSON, _ := cmd.Flags().GetBool("json")

	var keyword string
	if len(args) > 0 {
		keyword = args[0]
	}
	if keyword == "" && task == "" && description == "" && value == "" {
		fail("provide a keyword, --task, --description, or --value")
	}

	reg, _ := openSchedules()
	results := reg.Search(schedule.SearchParams{
		Keyword:       keyword,
		Task:          task,
		Description:   description,
		ValueNote:     value,
		CaseSensitive: caseSensitive,
	})

	if asJSON {
		b, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(b))
		return
	}

	rule("Search results")
	if keyword != "" {
		fmt.Printf("keyword: %s (task, description, value)\n", keyword)
	}
	if task != "" {
		fmt.Printf("task: %s\n", task)
	}
	if description != "" {
		fmt.Printf("description: %s\n", description)
	}
	if value != "" {
		fmt.Printf("value: %s\n", value)
	}
	fmt.Printf("matches: %d\n", len(results))
	thinRule()
	if len(results) == 0 {
		fmt.Println("no matching slots")
		return
	}
	for _, s := range results {
		printSchedule(s)
	}
}
