package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/hrms-client/internal/api"
)

var (
	cclWorkedDate string
	cclAssignedBy string
	cclPurpose    string
	cclDate       string
)

var cclCmd = &cobra.Command{
	Use:   "ccl",
	Short: "Compensatory leave claims for holiday work",
}

var cclMyCmd = &cobra.Command{
	Use:   "my",
	Short: "List my compensatory claims",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		ccls, err := client.GetMyCCLRequests(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(ccls)
	},
}

var cclValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check whether a date is claimable",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		result, err := client.ValidateCCLDate(cmd.Context(), cclDate)
		if err != nil {
			return err
		}

		if result.Valid {
			fmt.Printf("%s is a holiday: %s\n", cclDate, result.Holiday)
		} else {
			fmt.Printf("%s is not a company holiday\n", cclDate)
		}
		return nil
	},
}

var cclApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Claim compensatory leave for holiday work",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		created, err := client.ApplyCCL(cmd.Context(), api.ApplyCCLRequest{
			WorkedDate: cclWorkedDate,
			AssignedBy: cclAssignedBy,
			Purpose:    cclPurpose,
		})
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var cclVerifiersCmd = &cobra.Command{
	Use:   "verifiers",
	Short: "List users who can vouch for a claim",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		users, err := client.GetCCLVerifiers(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(users)
	},
}

func init() {
	cclValidateCmd.Flags().StringVar(&cclDate, "date", "", "date to check (YYYY-MM-DD)")
	cclValidateCmd.MarkFlagRequired("date")

	cclApplyCmd.Flags().StringVar(&cclWorkedDate, "worked-date", "", "holiday that was worked (YYYY-MM-DD)")
	cclApplyCmd.Flags().StringVar(&cclAssignedBy, "assigned-by", "", "user id of who assigned the work")
	cclApplyCmd.Flags().StringVar(&cclPurpose, "purpose", "", "what the work was")
	cclApplyCmd.MarkFlagRequired("worked-date")
	cclApplyCmd.MarkFlagRequired("assigned-by")

	cclCmd.AddCommand(cclMyCmd)
	cclCmd.AddCommand(cclValidateCmd)
	cclCmd.AddCommand(cclApplyCmd)
	cclCmd.AddCommand(cclVerifiersCmd)
}
