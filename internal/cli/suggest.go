package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trailbookapp/trailbook/internal/errors"
	"github.com/trailbookapp/trailbook/internal/suggest"
)

var suggestStoryID string

var suggestCmd = &cobra.Command{
	Use:   "suggest [text]",
	Short: "Suggest a title, tags, mood, and outline for story text",
	Long: "Run the local writing aids over story text. Pass the text as\n" +
		"arguments, pipe it on stdin, or point at an existing story\n" +
		"with --story.",
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := suggestInput(args)
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			return errors.Validation("no text to work with")
		}

		if title := suggest.Title(text); title != "" {
			fmt.Println("title:   ", title)
		}
		if tags := suggest.Tags(text); len(tags) > 0 {
			fmt.Println("tags:    ", strings.Join(tags, ", "))
		}
		fmt.Println("mood:    ", suggest.Mood(text))
		if location := suggest.Location(text); location != "" {
			fmt.Println("location:", location)
		}

		if outline := suggest.Outline(text); len(outline) > 0 {
			fmt.Println("\noutline:")
			for _, bullet := range outline {
				fmt.Println("  -", bullet)
			}
		}
		if highlights := suggest.Highlights(text); len(highlights) > 0 {
			fmt.Println("\nhighlights:")
			for _, highlight := range highlights {
				fmt.Println("  -", highlight)
			}
		}
		return nil
	},
}

// suggestInput resolves the text source: --story, arguments, or stdin.
func suggestInput(args []string) (string, error) {
	if suggestStoryID != "" {
		story, ok := current.store.Story(suggestStoryID)
		if !ok {
			return "", errors.NotFoundf("story %s not found", suggestStoryID)
		}
		return story.Title + " " + story.Body, nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	suggestCmd.Flags().StringVar(&suggestStoryID, "story", "", "Use an existing story's text.")

	rootCmd.AddCommand(suggestCmd)
}
