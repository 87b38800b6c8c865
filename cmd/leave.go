package cmd

import (
	"github.com/spf13/cobra"

	"github.com/frahmantamala/hrms-client/internal/api"
)

var (
	leaveType    string
	leaveFrom    string
	leaveTo      string
	leaveDays    float64
	leavePurpose string

	leaveActionVerb    string
	leaveActionRemarks string

	leaveFilterStatus   string
	leaveFilterEmployee string

	approvedEmployeeID string
	approvedDate       string
)

var leaveCmd = &cobra.Command{
	Use:   "leave",
	Short: "Leave requests",
}

var leaveMyCmd = &cobra.Command{
	Use:   "my",
	Short: "List my leave requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		leaves, err := client.GetMyLeaves(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(leaves)
	},
}

var leavePendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List requests awaiting my approval",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		leaves, err := client.GetPendingApprovals(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(leaves)
	},
}

var leaveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leave requests with filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		filters := make(map[string]string)
		if leaveFilterStatus != "" {
			filters["status"] = leaveFilterStatus
		}
		if leaveFilterEmployee != "" {
			filters["employeeId"] = leaveFilterEmployee
		}

		leaves, err := client.GetAllLeaves(cmd.Context(), filters)
		if err != nil {
			return err
		}
		return printJSON(leaves)
	},
}

var leaveApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Submit a new leave request",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		created, err := client.ApplyLeave(cmd.Context(), api.ApplyLeaveRequest{
			LeaveType:    leaveType,
			FromDate:     leaveFrom,
			ToDate:       leaveTo,
			NumberOfDays: leaveDays,
			Purpose:      leavePurpose,
		})
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var leaveActionCmd = &cobra.Command{
	Use:   "action [id]",
	Short: "Approve or reject a pending request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		updated, err := client.TakeLeaveAction(cmd.Context(), args[0], api.LeaveActionRequest{
			Action:  leaveActionVerb,
			Remarks: leaveActionRemarks,
		})
		if err != nil {
			return err
		}
		return printJSON(updated)
	},
}

var leaveApprovedCmd = &cobra.Command{
	Use:   "approved",
	Short: "List approved requests covering a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		employeeID := approvedEmployeeID
		if employeeID == "" {
			if u := store.User(); u != nil {
				employeeID = u.ID
			}
		}

		leaves, err := client.GetApprovedRecordsForDate(cmd.Context(), employeeID, approvedDate)
		if err != nil {
			return err
		}
		return printJSON(leaves)
	},
}

var leaveSettingsCmd = &cobra.Command{
	Use:   "settings [type]",
	Short: "Show request-form settings for leave or od",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		settings, err := client.GetLeaveSettings(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(settings)
	},
}

var leaveStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show my leave counters and balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		stats, err := client.GetLeaveStats(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(stats)
	},
}

func init() {
	leaveApplyCmd.Flags().StringVar(&leaveType, "type", "", "leave type")
	leaveApplyCmd.Flags().StringVar(&leaveFrom, "from", "", "start date (YYYY-MM-DD)")
	leaveApplyCmd.Flags().StringVar(&leaveTo, "to", "", "end date (YYYY-MM-DD)")
	leaveApplyCmd.Flags().Float64Var(&leaveDays, "days", 0, "number of days")
	leaveApplyCmd.Flags().StringVar(&leavePurpose, "purpose", "", "reason for the leave")
	leaveApplyCmd.MarkFlagRequired("type")
	leaveApplyCmd.MarkFlagRequired("from")
	leaveApplyCmd.MarkFlagRequired("to")
	leaveApplyCmd.MarkFlagRequired("days")

	leaveActionCmd.Flags().StringVar(&leaveActionVerb, "action", "", "approve or reject")
	leaveActionCmd.Flags().StringVar(&leaveActionRemarks, "remarks", "", "optional remarks")
	leaveActionCmd.MarkFlagRequired("action")

	leaveListCmd.Flags().StringVar(&leaveFilterStatus, "status", "", "filter by status")
	leaveListCmd.Flags().StringVar(&leaveFilterEmployee, "employee", "", "filter by employee id")

	leaveApprovedCmd.Flags().StringVar(&approvedEmployeeID, "employee", "", "employee id (defaults to me)")
	leaveApprovedCmd.Flags().StringVar(&approvedDate, "date", "", "date (YYYY-MM-DD)")
	leaveApprovedCmd.MarkFlagRequired("date")

	leaveCmd.AddCommand(leaveMyCmd)
	leaveCmd.AddCommand(leavePendingCmd)
	leaveCmd.AddCommand(leaveListCmd)
	leaveCmd.AddCommand(leaveApplyCmd)
	leaveCmd.AddCommand(leaveActionCmd)
	leaveCmd.AddCommand(leaveApprovedCmd)
	leaveCmd.AddCommand(leaveSettingsCmd)
	leaveCmd.AddCommand(leaveStatsCmd)
}
