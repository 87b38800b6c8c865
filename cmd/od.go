package cmd

import (
	"github.com/spf13/cobra"

	"github.com/frahmantamala/hrms-client/internal/api"
)

var (
	odFrom    string
	odTo      string
	odPlace   string
	odPurpose string
	odOutcome string
)

var odCmd = &cobra.Command{
	Use:   "od",
	Short: "On-duty requests",
}

var odMyCmd = &cobra.Command{
	Use:   "my",
	Short: "List my on-duty requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		ods, err := client.GetMyODs(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(ods)
	},
}

var odApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Submit a new on-duty request",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		created, err := client.ApplyOD(cmd.Context(), api.ApplyODRequest{
			FromDate: odFrom,
			ToDate:   odTo,
			Place:    odPlace,
			Purpose:  odPurpose,
		})
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var odOutcomeCmd = &cobra.Command{
	Use:   "outcome [id]",
	Short: "Record the outcome of an on-duty trip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		updated, err := client.UpdateODOutcome(cmd.Context(), args[0], odOutcome)
		if err != nil {
			return err
		}
		return printJSON(updated)
	},
}

var odCancelCmd = &cobra.Command{
	Use:   "cancel [id]",
	Short: "Withdraw a pending on-duty request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		cancelled, err := client.CancelOD(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cancelled)
	},
}

func init() {
	odApplyCmd.Flags().StringVar(&odFrom, "from", "", "start date (YYYY-MM-DD)")
	odApplyCmd.Flags().StringVar(&odTo, "to", "", "end date (YYYY-MM-DD)")
	odApplyCmd.Flags().StringVar(&odPlace, "place", "", "where the duty happens")
	odApplyCmd.Flags().StringVar(&odPurpose, "purpose", "", "reason for the request")
	odApplyCmd.MarkFlagRequired("from")
	odApplyCmd.MarkFlagRequired("to")
	odApplyCmd.MarkFlagRequired("purpose")

	odOutcomeCmd.Flags().StringVar(&odOutcome, "outcome", "", "what came out of the trip")
	odOutcomeCmd.MarkFlagRequired("outcome")

	odCmd.AddCommand(odMyCmd)
	odCmd.AddCommand(odApplyCmd)
	odCmd.AddCommand(odOutcomeCmd)
	odCmd.AddCommand(odCancelCmd)
}
