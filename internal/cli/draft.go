package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trailbookapp/trailbook/internal/domain"
	"github.com/trailbookapp/trailbook/internal/errors"
	"github.com/trailbookapp/trailbook/internal/normalize"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Work with the autosaved story draft",
}

var (
	draftStoryID  string
	draftTitle    string
	draftBody     string
	draftMood     string
	draftLocation string
	draftTags     string
)

var draftSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Autosave an in-progress story",
	Long: "Save in-progress story fields without publishing them. With\n" +
		"--story the draft belongs to an edit of that story, otherwise it\n" +
		"is the composer draft picked up by 'trailbook add'.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		draft := domain.Draft{
			Title: draftTitle,
			Body:  draftBody,
			Tags:  normalize.Tags(draftTags),
		}
		if draftMood != "" {
			draft.Mood = &draftMood
		}
		if draftLocation != "" {
			draft.Location = &draftLocation
		}

		if draftStoryID != "" {
			if _, ok := current.store.Story(draftStoryID); !ok {
				return errors.NotFoundf("story %s not found", draftStoryID)
			}
			current.store.SaveEditDraft(draftStoryID, draft)
		} else {
			current.store.SaveComposerDraft(draft)
		}
		fmt.Println("draft saved")
		return nil
	},
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the autosaved draft",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var draft domain.Draft
		var ok bool
		if draftStoryID != "" {
			draft, ok = current.store.EditDraft(draftStoryID)
		} else {
			draft, ok = current.store.ComposerDraft()
		}
		if !ok {
			fmt.Println("no draft")
			return nil
		}

		title := draft.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Println(title)
		fmt.Println("saved", draft.SavedAt.Format("Jan 2, 2006 15:04"))
		if draft.Body != "" {
			fmt.Println()
			fmt.Println(draft.Body)
		}
		if len(draft.Tags) > 0 {
			fmt.Println()
			fmt.Println("tags: " + strings.Join(draft.Tags, ", "))
		}
		return nil
	},
}

var draftClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the autosaved draft",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if draftStoryID != "" {
			current.store.ClearEditDraft(draftStoryID)
		} else {
			current.store.ClearComposerDraft()
		}
		fmt.Println("draft discarded")
		return nil
	},
}

func init() {
	draftCmd.PersistentFlags().StringVar(&draftStoryID, "story", "",
		"Work with the edit draft of this story instead of the composer draft.")

	draftSaveCmd.Flags().StringVarP(&draftTitle, "title", "t", "", "Story title.")
	draftSaveCmd.Flags().StringVarP(&draftBody, "body", "b", "", "Story text.")
	draftSaveCmd.Flags().StringVarP(&draftMood, "mood", "m", "", "Mood.")
	draftSaveCmd.Flags().StringVarP(&draftLocation, "location", "l", "", "Where it happened.")
	draftSaveCmd.Flags().StringVar(&draftTags, "tags", "", "Comma-separated tags.")

	draftCmd.AddCommand(draftSaveCmd, draftShowCmd, draftClearCmd)
	rootCmd.AddCommand(draftCmd)
}
