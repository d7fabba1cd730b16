package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trailbookapp/trailbook/internal/domain"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show the journal preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs := current.store.Prefs()
		fmt.Println("default visibility:    ", prefs.DefaultVisibility)
		fmt.Println("default allow comments:", prefs.DefaultAllowComments)
		fmt.Println("default allow likes:   ", prefs.DefaultAllowLikes)
		fmt.Println("default share location:", prefs.DefaultShareLocation)
		fmt.Println("display name:          ", valueOrUnset(prefs.DisplayName))
		fmt.Println("theme:                 ", prefs.Theme)
		return nil
	},
}

var (
	prefVisibility    string
	prefAllowComments bool
	prefAllowLikes    bool
	prefShareLocation bool
	prefDisplayName   string
	prefTheme         string
)

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update preferences",
	Long: "Update preferences. Only the flags you pass change; everything\n" +
		"else keeps its current value.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := domain.PreferencesPatch{}
		if cmd.Flags().Changed("visibility") {
			visibility := domain.Visibility(prefVisibility)
			patch.DefaultVisibility = &visibility
		}
		if cmd.Flags().Changed("allow-comments") {
			patch.DefaultAllowComments = &prefAllowComments
		}
		if cmd.Flags().Changed("allow-likes") {
			patch.DefaultAllowLikes = &prefAllowLikes
		}
		if cmd.Flags().Changed("share-location") {
			patch.DefaultShareLocation = &prefShareLocation
		}
		if cmd.Flags().Changed("display-name") {
			patch.DisplayName = &prefDisplayName
		}
		if cmd.Flags().Changed("theme") {
			theme := domain.Theme(prefTheme)
			patch.Theme = &theme
		}

		current.store.SetPrefs(patch)
		fmt.Println("preferences updated")
		return nil
	},
}

func valueOrUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}

func init() {
	prefsSetCmd.Flags().StringVar(&prefVisibility, "visibility", "", "Default visibility for new stories.")
	prefsSetCmd.Flags().BoolVar(&prefAllowComments, "allow-comments", false, "Allow comments on new stories by default.")
	prefsSetCmd.Flags().BoolVar(&prefAllowLikes, "allow-likes", false, "Allow likes on new stories by default.")
	prefsSetCmd.Flags().BoolVar(&prefShareLocation, "share-location", false, "Attach locations to new stories by default.")
	prefsSetCmd.Flags().StringVar(&prefDisplayName, "display-name", "", "Name shown on signed stories.")
	prefsSetCmd.Flags().StringVar(&prefTheme, "theme", "", "UI theme: system, light, or dark.")

	prefsCmd.AddCommand(prefsSetCmd)
	rootCmd.AddCommand(prefsCmd)
}
