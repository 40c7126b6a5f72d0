package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jchen89/taskdesk/internal/jobs"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search jobs by title and tags",
		Long:  "A bare keyword matches the title OR the tags. --title and --tag together require both to match; either alone matches just that field.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runJobSearch,
	}
	cmd.Flags().String("title", "", "Title substring")
	cmd.Flags().String("tag", "", "Tag substring")
	cmd.Flags().Bool("case-sensitive", false, "Match case exactly")
	cmd.Flags().Bool("include-deleted", false, "Include soft-deleted jobs")
	cmd.Flags().Bool("json", false, "Output JSON instead of a text block")
	jobCmd.AddCommand(cmd)
}

func runJobSearch(cmd *cobra.Command, args []string) {
	title, _ := cmd.Flags().GetString("title")
	tag, _ := cmd.Flags().GetString("tag")
	caseSensitive, _ := cmd.Flags().GetBool("case-sensitive")
	includeDeleted, _ := cmd.Flags().GetBool("include-deleted")
	asJSON, _ := cmd.Flags().GetBool("json")

	var keyword string
	if len(args) > 0 {
		keyword = args[0]
	}
	if keyword == "" && title == "" && tag == "" {
		fail("provide a keyword, --title, or --tag")
	}

	reg, _ := openJobs()
	results := reg.Search(jobs.SearchParams{
		Keyword:        keyword,
		Title:          title,
		Tag:            tag,
		CaseSensitive:  caseSensitive,
		IncludeDeleted: includeDeleted,
	})

	if asJSON {
		b, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(b))
		return
	}

	rule("Search results")
	if keyword != "" {
		fmt.Printf("keyword: %s (title or tags)\n", keyword)
	}
	if title != "" {
		fmt.Printf("title: %s\n", title)
	}
	if tag != "" {
		fmt.Printf("tag: %s\n", tag)
	}
	fmt.Printf("matches: %d\n", len(results))
	thinRule()
	if len(results) == 0 {
		fmt.Println("no matching jobs")
		return
	}
	for i, job := range results {
		printJob(strconv.Itoa(i), job)
	}
}
