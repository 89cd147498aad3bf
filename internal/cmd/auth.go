package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}
			if err := a.store.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			user, _ := a.store.Current()
			fmt.Printf("Logged in as %s (%s)\n", user.DisplayName, user.Role)
			a.store.LogActivity("cli_login", "")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.store.Logout()
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			user, _ := a.store.Current()
			fmt.Printf("ID:    %d\nName:  %s\nEmail: %s\nRole:  %s\n", user.UserID, user.DisplayName, user.Email, user.Role)
			return nil
		},
	}
}
