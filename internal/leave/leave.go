// Package leave serves the leave side of the stub: regular leave requests,
// on-duty requests, compensatory claims for holiday work, the holiday
// calendar, request-form settings and per-employee counters.
package leave

import (
	"context"
	"strings"
	"time"

	"github.com/frahmantamala/hrms-client/internal/api"
	"github.com/frahmantamala/hrms-client/internal/core/common/validation"
	leavemodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/leave"
)

// Filters narrows a leave listing; zero values mean no constraint.
type Filters struct {
	EmployeeID string
	Status     string
	LeaveType  string
	FromDate   *time.Time
	ToDate     *time.Time
}

// StatusCounts is the per-status tally behind the stats endpoint.
type StatusCounts struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
}

type Repository interface {
	CreateLeave(ctx context.Context, req *leavemodel.Request) error
	GetLeaveByID(ctx context.Context, id string) (*leavemodel.Request, error)
	UpdateLeave(ctx context.Context, req *leavemodel.Request) error
	ListLeavesByEmployee(ctx context.Context, employeeID string) ([]leavemodel.Request, error)
	ListPendingExcluding(ctx context.Context, employeeID string) ([]leavemodel.Request, error)
	ListLeaves(ctx context.Context, filters Filters) ([]leavemodel.Request, error)
	ListApprovedCovering(ctx context.Context, employeeID string, date time.Time) ([]leavemodel.Request, error)
	CountByStatus(ctx context.Context, employeeID string) (StatusCounts, error)
	SumApprovedDaysByType(ctx context.Context, employeeID string) (map[string]float64, error)

	CreateOD(ctx context.Context, od *leavemodel.ODRequest) error
	GetODByID(ctx context.Context, id string) (*leavemodel.ODRequest, error)
	UpdateOD(ctx context.Context, od *leavemodel.ODRequest) error
	ListODsByEmployee(ctx context.Context, employeeID string) ([]leavemodel.ODRequest, error)

	CreateCCL(ctx context.Context, ccl *leavemodel.CCLRequest) error
	ListCCLsByEmployee(ctx context.Context, employeeID string) ([]leavemodel.CCLRequest, error)

	GetHolidayByDate(ctx context.Context, date time.Time) (*leavemodel.Holiday, error)
	ListHolidays(ctx context.Context) ([]leavemodel.Holiday, error)

	GetSettings(ctx context.Context, requestType string) (*leavemodel.Settings, error)
}

func wireLeave(req *leavemodel.Request) api.LeaveRequest {
	return api.LeaveRequest{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		LeaveType:    req.LeaveType,
		FromDate:     req.FromDate.Format(validation.DateLayout),
		ToDate:       req.ToDate.Format(validation.DateLayout),
		NumberOfDays: req.NumberOfDays,
		Purpose:      req.Purpose,
		Status:       req.Status,
		Remarks:      req.Remarks,
		ActionBy:     req.ActionBy,
		CreatedAt:    req.CreatedAt.Format(time.RFC3339),
	}
}

func wireLeaves(reqs []leavemodel.Request) []api.LeaveRequest {
	out := make([]api.LeaveRequest, 0, len(reqs))
	for i := range reqs {
		out = append(out, wireLeave(&reqs[i]))
	}
	return out
}

func wireOD(od *leavemodel.ODRequest) api.ODRequest {
	return api.ODRequest{
		ID:         od.ID,
		EmployeeID: od.EmployeeID,
		FromDate:   od.FromDate.Format(validation.DateLayout),
		ToDate:     od.ToDate.Format(validation.DateLayout),
		Place:      od.Place,
		Purpose:    od.Purpose,
		Outcome:    od.Outcome,
		Status:     od.Status,
		CreatedAt:  od.CreatedAt.Format(time.RFC3339),
	}
}

func wireCCL(ccl *leavemodel.CCLRequest) api.CCLRequest {
	return api.CCLRequest{
		ID:         ccl.ID,
		EmployeeID: ccl.EmployeeID,
		WorkedDate: ccl.WorkedDate.Format(validation.DateLayout),
		AssignedBy: ccl.AssignedBy,
		Purpose:    ccl.Purpose,
		Status:     ccl.Status,
		CreatedAt:  ccl.CreatedAt.Format(time.RFC3339),
	}
}

func wireSettings(s *leavemodel.Settings) api.LeaveSettings {
	return api.LeaveSettings{
		RequestType:       s.RequestType,
		MaxDaysPerRequest: s.MaxDaysPerRequest,
		AllowHalfDay:      s.AllowHalfDay,
		Reasons:           splitReasons(s.Reasons),
	}
}

// splitReasons decodes the comma-separated reasons column.
func splitReasons(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
