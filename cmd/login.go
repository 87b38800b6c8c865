package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/hrms-client/internal/api"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		_ = cfg

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		data, err := client.Login(ctx, api.LoginRequest{
			Email:    loginEmail,
			Password: loginPassword,
		})
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		store.SetAuth(data.User, data.Token)

		// enrichment fetch; a missing employee record is not a login failure
		if data.User.EmpNo != "" {
			if emp, err := client.GetEmployee(ctx, data.User.EmpNo); err == nil {
				store.SetEmployee(emp)
			} else if !api.IsNotFound(err) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not load employee profile: %v\n", err)
			}
		}

		fmt.Printf("Logged in as %s <%s>\n", data.User.Name, data.User.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(".")
		if err != nil {
			return err
		}
		setupLogging(cfg)

		store, err := buildSession(cfg)
		if err != nil {
			return err
		}

		store.Logout()
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(".")
		if err != nil {
			return err
		}
		setupLogging(cfg)

		store, err := buildSession(cfg)
		if err != nil {
			return err
		}

		if !store.IsAuthenticated() {
			fmt.Println("Not logged in")
			return nil
		}

		return printJSON(store.Snapshot())
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}
