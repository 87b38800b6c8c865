package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/hrms-client/internal/api"
)

var (
	attendanceDate  string
	attendanceFrom  string
	attendanceTo    string
	attendancePage  int
	attendanceLimit int
)

var attendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Punch records",
}

var attendanceDetailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Show the punch record for one date",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		user := store.User()
		if user == nil || user.EmpNo == "" {
			return fmt.Errorf("session has no employee number")
		}

		record, err := client.GetAttendanceDetail(cmd.Context(), user.EmpNo, attendanceDate)
		if err != nil {
			if api.IsNotFound(err) {
				fmt.Println("No attendance record for this date")
				return nil
			}
			return err
		}

		return printJSON(record)
	},
}

var attendanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List punch records for a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := clientSetup()
		if err != nil {
			return err
		}
		if err := requireAuth(store); err != nil {
			return err
		}

		user := store.User()
		if user == nil || user.EmpNo == "" {
			return fmt.Errorf("session has no employee number")
		}

		list, err := client.GetAttendanceList(cmd.Context(), api.AttendanceListRequest{
			EmployeeNumber: user.EmpNo,
			StartDate:      attendanceFrom,
			EndDate:        attendanceTo,
			Page:           attendancePage,
			Limit:          attendanceLimit,
		})
		if err != nil {
			return err
		}

		return printJSON(list)
	},
}

func init() {
	attendanceDetailCmd.Flags().StringVar(&attendanceDate, "date", "", "date (YYYY-MM-DD)")
	attendanceDetailCmd.MarkFlagRequired("date")

	attendanceListCmd.Flags().StringVar(&attendanceFrom, "from", "", "start date (YYYY-MM-DD)")
	attendanceListCmd.Flags().StringVar(&attendanceTo, "to", "", "end date (YYYY-MM-DD)")
	attendanceListCmd.Flags().IntVar(&attendancePage, "page", 0, "page number")
	attendanceListCmd.Flags().IntVar(&attendanceLimit, "limit", 0, "page size")
	attendanceListCmd.MarkFlagRequired("from")
	attendanceListCmd.MarkFlagRequired("to")

	attendanceCmd.AddCommand(attendanceDetailCmd)
	attendanceCmd.AddCommand(attendanceListCmd)
}
