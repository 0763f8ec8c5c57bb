package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and persist the session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, s, err := newApp(cmd.Context(), false)
		if err != nil {
			return err
		}

		id, err := client.Login(cmd.Context(), loginEmail, loginPassword)
		if err != nil {
			return err
		}
		user, err := client.GetUser(cmd.Context(), id)
		if err != nil {
			return err
		}
		s.SetUser(user)

		fmt.Printf("Logged in as %s %s (id %d)\n", user.FirstName, user.LastName, user.ID)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the persisted session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := newApp(cmd.Context(), false)
		if err != nil {
			return err
		}
		s.Logout()
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := newApp(cmd.Context(), true)
		if err != nil {
			return err
		}

		user := s.User()
		if user == nil {
			fmt.Println("Not logged in")
			return nil
		}
		fmt.Printf("%s %s <%s> (id %d)\n", user.FirstName, user.LastName, user.Email, user.ID)
		for _, business := range user.BusinessesAdministered {
			fmt.Printf("  administers %s (business %d)\n", business.Name, business.ID)
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}
