package cmd

import (
	"github.com/spf13/cobra"
)

var holidaysCmd = &cobra.Command{
	Use:   "holidays",
	Short: "Show the company holiday calendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		holidays, err := client.GetHolidays(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(holidays)
	},
}
