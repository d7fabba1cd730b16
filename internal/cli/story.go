package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trailbookapp/trailbook/internal/domain"
	"github.com/trailbookapp/trailbook/internal/errors"
	"github.com/trailbookapp/trailbook/internal/normalize"
	"github.com/trailbookapp/trailbook/internal/store"
)

var (
	addTitle      string
	addBody       string
	addTemplate   string
	addMood       string
	addLocation   string
	addVisibility string
	addTags       string
	addImages     []string
	addComments   bool
	addLikes      bool
	addSigned     bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Write a new story",
	Long: "Publish a new story. An autosaved composer draft, if present,\n" +
		"fills in any field you don't pass a flag for and is discarded on\n" +
		"success.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		draft := normalize.Raw{
			Title:      addTitle,
			Body:       addBody,
			Visibility: addVisibility,
		}

		// Resume the autosaved composer draft underneath the flags
		if saved, ok := current.store.ComposerDraft(); ok {
			if draft.Title == "" {
				draft.Title = saved.Title
			}
			if draft.Body == "" {
				draft.Body = saved.Body
			}
			if draft.Visibility == "" {
				draft.Visibility = string(saved.Visibility)
			}
			if addMood == "" && saved.Mood != nil {
				draft.Mood = saved.Mood
			}
			if addLocation == "" && saved.Location != nil {
				draft.Location = saved.Location
			}
			if addTags == "" && len(saved.Tags) > 0 {
				draft.Tags = saved.Tags
			}
			if len(addImages) == 0 && len(saved.Images) > 0 {
				draft.Images = saved.Images
			}
		}
		if addTemplate != "" {
			draft.Template = &addTemplate
		}
		if addMood != "" {
			draft.Mood = &addMood
		}
		if addLocation != "" {
			draft.Location = &addLocation
		}
		if addTags != "" {
			draft.Tags = addTags
		}
		if len(addImages) > 0 {
			draft.Images = addImages
		}
		// Only pass flags the user actually set, so preference defaults
		// apply to the rest
		if cmd.Flags().Changed("allow-comments") {
			draft.AllowComments = &addComments
		}
		if cmd.Flags().Changed("allow-likes") {
			draft.AllowLikes = &addLikes
		}
		if cmd.Flags().Changed("signed") {
			anonymous := !addSigned
			draft.IsAnonymous = &anonymous
		}

		id := current.store.AddStory(draft)
		current.store.ClearComposerDraft()
		fmt.Println(id)
		return nil
	},
}

var (
	listVisibility string
	listTag        string
	listMood       string
	listBookmarked bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stories, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stories := current.store.Stories()

		bookmarked := map[string]bool{}
		if listBookmarked {
			for _, id := range current.store.Bookmarks() {
				bookmarked[id] = true
			}
		}

		shown := 0
		for _, story := range stories {
			if listVisibility != "" && story.Visibility != domain.Visibility(listVisibility) {
				continue
			}
			if listTag != "" && !hasTag(story, listTag) {
				continue
			}
			if listMood != "" && (story.Mood == nil || *story.Mood != listMood) {
				continue
			}
			if listBookmarked && !bookmarked[story.ID] {
				continue
			}
			fmt.Println(storyLine(story))
			shown++
		}
		if shown == 0 {
			if len(stories) == 0 {
				fmt.Println("no stories yet; write one with: trailbook add")
			} else {
				fmt.Println("no stories match")
			}
		}
		return nil
	},
}

func hasTag(story domain.Story, tag string) bool {
	// Stored tags are lowercase, so match the filter case-insensitively.
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, t := range story.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

var (
	showDismissNote bool
)

var showCmd = &cobra.Command{
	Use:   "show <story-id>",
	Short: "Show one story in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		story, ok := current.store.Story(args[0])
		if !ok {
			return errors.NotFoundf("story %s not found", args[0])
		}

		printStory(story)

		if story.Visibility == domain.VisibilityPublic && !current.store.BannerDismissed(story.ID) {
			fmt.Println()
			fmt.Println("note: this story is public. Hide this note with --dismiss-note,")
			fmt.Println("or make the story private with: trailbook edit " + story.ID + " --visibility private")
			if showDismissNote {
				current.store.DismissBanner(story.ID)
			}
		}
		return nil
	},
}

var (
	editTitle      string
	editBody       string
	editTemplate   string
	editMood       string
	editLocation   string
	editVisibility string
	editTags       string
	editImages     []string
	editComments   bool
	editLikes      bool
	editSigned     bool
)

var editCmd = &cobra.Command{
	Use:   "edit <story-id>",
	Short: "Edit a story's fields",
	Long: "Edit a story. Only the flags you pass change; pass an empty\n" +
		"string to clear an optional field, e.g. --mood \"\".",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := store.StoryPatch{}
		if cmd.Flags().Changed("title") {
			patch.Title = &editTitle
		}
		if cmd.Flags().Changed("body") {
			patch.Body = &editBody
		}
		if cmd.Flags().Changed("template") {
			patch.Template = &editTemplate
		}
		if cmd.Flags().Changed("mood") {
			patch.Mood = &editMood
		}
		if cmd.Flags().Changed("location") {
			patch.Location = &editLocation
		}
		if cmd.Flags().Changed("visibility") {
			visibility := domain.Visibility(editVisibility)
			patch.Visibility = &visibility
		}
		if cmd.Flags().Changed("tags") {
			patch.Tags = editTags
		}
		if cmd.Flags().Changed("images") {
			patch.Images = editImages
		}
		if cmd.Flags().Changed("allow-comments") {
			patch.AllowComments = &editComments
		}
		if cmd.Flags().Changed("allow-likes") {
			patch.AllowLikes = &editLikes
		}
		if cmd.Flags().Changed("signed") {
			anonymous := !editSigned
			patch.IsAnonymous = &anonymous
		}

		if !current.store.UpdateStory(args[0], patch) {
			return errors.NotFoundf("story %s not found", args[0])
		}
		current.store.ClearEditDraft(args[0])
		fmt.Println("updated", args[0])
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <story-id>",
	Short: "Delete a story",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !current.store.RemoveStory(args[0]) {
			return errors.NotFoundf("story %s not found", args[0])
		}
		fmt.Println("deleted", args[0])
		return nil
	},
}

var likeCmd = &cobra.Command{
	Use:   "like <story-id>",
	Short: "Toggle your like on a story",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !current.store.ToggleLike(args[0]) {
			return errors.NotFoundf("story %s not found", args[0])
		}
		story, _ := current.store.Story(args[0])
		if story.Liked {
			fmt.Printf("liked (%d)\n", story.Likes)
		} else {
			fmt.Printf("unliked (%d)\n", story.Likes)
		}
		return nil
	},
}

var commentCmd = &cobra.Command{
	Use:   "comment <story-id> <text>",
	Short: "Add a comment to a story",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args[1:], " ")
		if !current.store.AddComment(args[0], text) {
			return errors.NotFoundf("story %s not found", args[0])
		}
		fmt.Println("comment added")
		return nil
	},
}

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark <story-id>",
	Short: "Toggle a bookmark on a story",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := current.store.Story(args[0]); !ok {
			return errors.NotFoundf("story %s not found", args[0])
		}
		if current.store.ToggleBookmark(args[0]) {
			fmt.Println("bookmarked", args[0])
		} else {
			fmt.Println("bookmark removed", args[0])
		}
		return nil
	},
}

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List bookmarked stories, most recent bookmark first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bookmarks := current.store.Bookmarks()
		if len(bookmarks) == 0 {
			fmt.Println("no bookmarks")
			return nil
		}
		for _, id := range bookmarks {
			if story, ok := current.store.Story(id); ok {
				fmt.Println(storyLine(story))
			}
		}
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, tag := range current.store.AllTags() {
			fmt.Println(tag)
		}
		return nil
	},
}

// storyLine renders the one-line list form of a story.
func storyLine(story domain.Story) string {
	title := story.Title
	if title == "" {
		title = "(untitled)"
	}

	bits := []string{
		story.ID,
		story.CreatedAt.Format("2006-01-02"),
		string(story.Visibility),
		title,
	}
	if len(story.Tags) > 0 {
		bits = append(bits, "#"+strings.Join(story.Tags, " #"))
	}
	return strings.Join(bits, "  ")
}

// printStory renders the full story view.
func printStory(story domain.Story) {
	title := story.Title
	if title == "" {
		title = "(untitled)"
	}

	meta := []string{
		story.CreatedAt.Format("Jan 2, 2006 15:04"),
		string(story.Visibility),
	}
	if story.Mood != nil && *story.Mood != "" {
		meta = append(meta, *story.Mood)
	}
	if story.Location != nil && *story.Location != "" {
		meta = append(meta, *story.Location)
	}

	fmt.Println(title)
	fmt.Println(strings.Join(meta, " • "))
	if story.Author != nil && *story.Author != "" {
		fmt.Println("By " + *story.Author)
	}
	fmt.Println()
	fmt.Println(story.Body)

	if len(story.Tags) > 0 {
		fmt.Println()
		fmt.Println("tags: " + strings.Join(story.Tags, ", "))
	}
	if len(story.Images) > 0 {
		fmt.Printf("images: %d\n", len(story.Images))
	}
	if story.Likes > 0 || story.Liked {
		fmt.Printf("likes: %d\n", story.Likes)
	}
	if len(story.Comments) > 0 {
		fmt.Println()
		fmt.Println("--- Comments ---")
		for _, c := range story.Comments {
			fmt.Printf("[%s] %s\n", c.Date.Format("Jan 2, 2006 15:04"), c.Text)
		}
	}
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Story title.")
	addCmd.Flags().StringVarP(&addBody, "body", "b", "", "Story text.")
	addCmd.Flags().StringVar(&addTemplate, "template", "", "Writing template the story follows.")
	addCmd.Flags().StringVarP(&addMood, "mood", "m", "", "Mood, e.g. joyful.")
	addCmd.Flags().StringVarP(&addLocation, "location", "l", "", "Where it happened.")
	addCmd.Flags().StringVar(&addVisibility, "visibility", "", "private, friends, or public (default from preferences).")
	addCmd.Flags().StringVar(&addTags, "tags", "", "Comma-separated tags.")
	addCmd.Flags().StringSliceVar(&addImages, "images", nil, "Image references, repeatable.")
	addCmd.Flags().BoolVar(&addComments, "allow-comments", false, "Allow comments on this story.")
	addCmd.Flags().BoolVar(&addLikes, "allow-likes", false, "Allow likes on this story.")
	addCmd.Flags().BoolVar(&addSigned, "signed", false, "Attach your display name instead of posting anonymously.")

	listCmd.Flags().StringVar(&listVisibility, "visibility", "", "Only stories with this visibility.")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Only stories carrying this tag.")
	listCmd.Flags().StringVar(&listMood, "mood", "", "Only stories with this mood.")
	listCmd.Flags().BoolVar(&listBookmarked, "bookmarked", false, "Only bookmarked stories.")

	showCmd.Flags().BoolVar(&showDismissNote, "dismiss-note", false, "Stop showing the public-story note for this story.")

	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "Story title.")
	editCmd.Flags().StringVarP(&editBody, "body", "b", "", "Story text.")
	editCmd.Flags().StringVar(&editTemplate, "template", "", "Writing template the story follows.")
	editCmd.Flags().StringVarP(&editMood, "mood", "m", "", "Mood, e.g. joyful.")
	editCmd.Flags().StringVarP(&editLocation, "location", "l", "", "Where it happened.")
	editCmd.Flags().StringVar(&editVisibility, "visibility", "", "private, friends, or public.")
	editCmd.Flags().StringVar(&editTags, "tags", "", "Comma-separated tags, replacing the current set.")
	editCmd.Flags().StringSliceVar(&editImages, "images", nil, "Image references, replacing the current set.")
	editCmd.Flags().BoolVar(&editComments, "allow-comments", false, "Allow comments on this story.")
	editCmd.Flags().BoolVar(&editLikes, "allow-likes", false, "Allow likes on this story.")
	editCmd.Flags().BoolVar(&editSigned, "signed", false, "Attach your display name instead of posting anonymously.")

	rootCmd.AddCommand(addCmd, listCmd, showCmd, editCmd, rmCmd,
		likeCmd, commentCmd, bookmarkCmd, bookmarksCmd, tagsCmd)
}
