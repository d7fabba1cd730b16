package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trailbookapp/trailbook/internal/domain"
	"github.com/trailbookapp/trailbook/internal/service"
)

var (
	loginEmail    string
	loginRemember bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the journal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := current.auth.Login(service.LoginRequest{
			Email:    loginEmail,
			Remember: loginRemember,
		})
		if err != nil {
			return err
		}
		fmt.Println("signed in as", session.Email)
		return nil
	},
}

var (
	signupName     string
	signupEmail    string
	signupRemember bool
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create the local account and sign in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := current.auth.Signup(service.SignupRequest{
			Name:     signupName,
			Email:    signupEmail,
			Remember: signupRemember,
		})
		if err != nil {
			return err
		}
		fmt.Println("welcome,", session.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the remembered session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current.auth.Logout()
		fmt.Println("signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, ok := current.auth.Current()
		if !ok {
			fmt.Println("not signed in")
			return nil
		}
		if session.DisplayName != "" {
			fmt.Printf("%s (%s)\n", session.DisplayName, session.Email)
		} else {
			fmt.Println(session.Email)
		}
		return nil
	},
}

var nameCmd = &cobra.Command{
	Use:   "name <display-name>",
	Short: "Set the display name used on signed stories",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		if _, err := current.auth.SetDisplayName(name); err != nil {
			return err
		}
		// Future signed stories snapshot the name from preferences
		current.store.SetPrefs(domain.PreferencesPatch{DisplayName: &name})
		fmt.Println("display name set to", name)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Email address to sign in with.")
	loginCmd.Flags().BoolVar(&loginRemember, "remember", true, "Remember the session across runs.")

	signupCmd.Flags().StringVarP(&signupName, "name", "n", "", "Display name.")
	signupCmd.Flags().StringVarP(&signupEmail, "email", "e", "", "Email address.")
	signupCmd.Flags().BoolVar(&signupRemember, "remember", true, "Remember the session across runs.")

	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, whoamiCmd, nameCmd)
}
