package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/hrms-client/internal/api"
	"github.com/frahmantamala/hrms-client/internal/session"
)

var (
	profileName  string
	profileEmail string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the logged-in user's profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Fetch the current identity from the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		user, err := client.GetMe(cmd.Context())
		if err != nil {
			return err
		}

		// keep the local session in sync with what the backend returned
		store.SetAuth(*user, store.Token())

		return printJSON(user)
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update name or email on the backend and locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		patch := session.UserPatch{}
		if cmd.Flags().Changed("name") {
			patch.Name = &profileName
		}
		if cmd.Flags().Changed("email") {
			patch.Email = &profileEmail
		}
		if patch.Name == nil && patch.Email == nil {
			return fmt.Errorf("nothing to update, pass --name or --email")
		}

		updated, err := client.UpdateProfile(cmd.Context(), patch)
		if err != nil {
			return err
		}

		if err := store.UpdateUser(patch); err != nil {
			return err
		}

		return printJSON(updated)
	},
}

var employeeCmd = &cobra.Command{
	Use:   "employee [empNo]",
	Short: "Fetch an employee profile by employee number",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		empNo := ""
		if len(args) > 0 {
			empNo = args[0]
		} else if u := store.User(); u != nil {
			empNo = u.EmpNo
		}
		if empNo == "" {
			return fmt.Errorf("no employee number given and none on the session")
		}

		emp, err := client.GetEmployee(cmd.Context(), empNo)
		if err != nil {
			if api.IsNotFound(err) {
				fmt.Println("No employee record found")
				return nil
			}
			return err
		}

		// refresh the cached enrichment when it is the caller's own record
		if u := store.User(); u != nil && u.EmpNo == empNo {
			store.SetEmployee(emp)
		}

		return printJSON(emp)
	},
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "new display name")
	profileUpdateCmd.Flags().StringVar(&profileEmail, "email", "", "new email address")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
}
