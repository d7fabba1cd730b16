package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trailbookapp/trailbook/internal/errors"
	"github.com/trailbookapp/trailbook/internal/export"
)

var (
	exportDir  string
	exportText bool
)

var exportCmd = &cobra.Command{
	Use:   "export [story-id]",
	Short: "Export one story, or the whole journal",
	Long: "With a story ID, write that story as JSON (or plain text with\n" +
		"--text). Without one, write a full journal backup that\n" +
		"'trailbook import' can restore.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		displayName := current.store.Prefs().DisplayName

		if len(args) == 1 {
			story, ok := current.store.Story(args[0])
			if !ok {
				return errors.NotFoundf("story %s not found", args[0])
			}

			var path string
			var err error
			if exportText {
				path, err = export.WriteText(exportDir, story, displayName)
			} else {
				path, err = export.WriteJSON(exportDir, story, displayName)
			}
			if err != nil {
				return err
			}
			fmt.Println("wrote", path)
			return nil
		}

		bundle := current.store.ExportAll()
		path := exportDir + "/trailbook-backup.json"
		if err := export.WriteBundle(path, bundle); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d stories)\n", path, len(bundle.Stories))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <backup-file>",
	Short: "Restore the journal from a backup file",
	Long: "Replace the entire journal with the contents of a backup\n" +
		"written by 'trailbook export'. The current stories, preferences,\n" +
		"and bookmarks are overwritten.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}

		if !current.store.ImportAll(data) {
			return errors.Validation("not a journal backup: expected a stories list and prefs")
		}
		fmt.Printf("imported %d stories\n", len(current.store.Stories()))
		return nil
	},
}

var seedFilePath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the seed dataset into an empty journal",
	Long: "Run the first-run bootstrap by hand. Does nothing when the\n" +
		"journal already has stories.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(current.store.Stories()) > 0 {
			fmt.Println("journal already has stories; seed skipped")
			return nil
		}

		path := seedFilePath
		if path == "" {
			path = current.cfg.Seed.Path
		}
		if err := current.store.Bootstrap(cmd.Context(), path); err != nil {
			return err
		}
		fmt.Printf("seeded %d stories from %s\n", len(current.store.Stories()), path)
		return nil
	},
}

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every story, keeping preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes {
			return errors.Validation("refusing to clear without --yes")
		}
		current.store.ClearAll()
		fmt.Println("journal cleared")
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", ".", "Directory to write into.")
	exportCmd.Flags().BoolVar(&exportText, "text", false, "Write plain text instead of JSON (single story only).")

	seedCmd.Flags().StringVarP(&seedFilePath, "file", "f", "", "Seed dataset to load (default from configuration).")

	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm deletion.")

	rootCmd.AddCommand(exportCmd, importCmd, clearCmd, seedCmd)
}
