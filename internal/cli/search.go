package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trailbookapp/trailbook/internal/search"
)

var (
	searchTags       []string
	searchMood       string
	searchVisibility string
	searchSort       string
	searchLimit      int
	searchOffset     int
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search across stories",
	Long: "Search story titles, text, and locations. Filters narrow the\n" +
		"results; with no query at all they browse the whole journal.",
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params := search.DefaultParams()
		params.Query = strings.Join(args, " ")
		params.Tags = searchTags
		params.Mood = searchMood
		params.Visibility = searchVisibility
		params.SortBy = searchSort
		params.Limit = searchLimit
		params.Offset = searchOffset

		result, err := current.search.Search(cmd.Context(), params)
		if err != nil {
			return err
		}

		if result.Total == 0 {
			fmt.Println("no matches")
			return nil
		}

		fmt.Printf("%d match(es), %dms\n\n", result.Total, result.TookMs)
		for _, hit := range result.Hits {
			title := hit.Title
			if title == "" {
				title = "(untitled)"
			}
			line := fmt.Sprintf("%s  %s", hit.ID, title)
			if hit.Location != "" {
				line += "  @ " + hit.Location
			}
			if len(hit.Tags) > 0 {
				line += "  #" + strings.Join(hit.Tags, " #")
			}
			fmt.Println(line)
		}

		if len(result.Facets.Tags) > 0 {
			var bits []string
			for _, facet := range result.Facets.Tags {
				bits = append(bits, fmt.Sprintf("%s(%d)", facet.Value, facet.Count))
			}
			fmt.Println("\ntags:", strings.Join(bits, " "))
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringSliceVar(&searchTags, "tag", nil, "Only stories carrying this tag, repeatable.")
	searchCmd.Flags().StringVar(&searchMood, "mood", "", "Only stories with this mood.")
	searchCmd.Flags().StringVar(&searchVisibility, "visibility", "", "Only stories at this visibility level.")
	searchCmd.Flags().StringVar(&searchSort, "sort", "relevance", "Sort order: relevance, title, recent, or updated.")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "Maximum results to show.")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "Results to skip, for paging.")

	rootCmd.AddCommand(searchCmd)
}
