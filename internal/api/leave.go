package api

import (
	"context"
	"fmt"
	"net/url"
)

const (
	LeaveStatusPending   = "pending"
	LeaveStatusApproved  = "approved"
	LeaveStatusRejected  = "rejected"
	LeaveStatusCancelled = "cancelled"

	LeaveActionApprove = "approve"
	LeaveActionReject  = "reject"
)

// LeaveRequest is a leave application as the backend returns it.
type LeaveRequest struct {
	ID           string  `json:"_id"`
	EmployeeID   string  `json:"employeeId"`
	LeaveType    string  `json:"leaveType"`
	FromDate     string  `json:"fromDate"`
	ToDate       string  `json:"toDate"`
	NumberOfDays float64 `json:"numberOfDays"`
	Purpose      string  `json:"purpose"`
	Status       string  `json:"status"`
	Remarks      string  `json:"remarks,omitempty"`
	ActionBy     string  `json:"actionBy,omitempty"`
	CreatedAt    string  `json:"createdAt,omitempty"`
}

// ApplyLeaveRequest is the body for POST /leaves.
type ApplyLeaveRequest struct {
	LeaveType    string  `json:"leaveType"`
	FromDate     string  `json:"fromDate"`
	ToDate       string  `json:"toDate"`
	NumberOfDays float64 `json:"numberOfDays"`
	Purpose      string  `json:"purpose"`
}

func (r ApplyLeaveRequest) Validate() error {
	if r.LeaveType == "" {
		return fmt.Errorf("leave type is required")
	}
	if r.FromDate == "" || r.ToDate == "" {
		return fmt.Errorf("from and to dates are required")
	}
	if r.NumberOfDays <= 0 {
		return fmt.Errorf("number of days must be positive")
	}
	return nil
}

// LeaveActionRequest is the approver's decision on a pending request.
type LeaveActionRequest struct {
	Action  string `json:"action"`
	Remarks string `json:"remarks,omitempty"`
}

type LeaveSettings struct {
	RequestType       string   `json:"type"`
	MaxDaysPerRequest float64  `json:"maxDaysPerRequest"`
	AllowHalfDay      bool     `json:"allowHalfDay"`
	Reasons           []string `json:"reasons,omitempty"`
}

type LeaveStats struct {
	Total    int                `json:"total"`
	Pending  int                `json:"pending"`
	Approved int                `json:"approved"`
	Rejected int                `json:"rejected"`
	Balances map[string]float64 `json:"balances,omitempty"`
}

type Holiday struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Optional bool   `json:"optional,omitempty"`
}

// GetMyLeaves lists the caller's own leave requests.
func (c *Client) GetMyLeaves(ctx context.Context) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	if err := c.get(ctx, "/leaves/my", nil, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

// GetPendingApprovals lists requests awaiting the caller's decision.
func (c *Client) GetPendingApprovals(ctx context.Context) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	if err := c.get(ctx, "/leaves/pending-approvals", nil, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

// GetAllLeaves lists leave requests matching arbitrary backend filters, which
// are forwarded verbatim as query parameters.
func (c *Client) GetAllLeaves(ctx context.Context, filters map[string]string) ([]LeaveRequest, error) {
	query := url.Values{}
	for key, value := range filters {
		query.Set(key, value)
	}

	var leaves []LeaveRequest
	if err := c.get(ctx, "/leaves", query, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

// ApplyLeave submits a new leave request.
func (c *Client) ApplyLeave(ctx context.Context, req ApplyLeaveRequest) (*LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var leave LeaveRequest
	if err := c.post(ctx, "/leaves", req, &leave); err != nil {
		return nil, err
	}
	return &leave, nil
}

// TakeLeaveAction approves or rejects a pending request.
func (c *Client) TakeLeaveAction(ctx context.Context, id string, req LeaveActionRequest) (*LeaveRequest, error) {
	if id == "" {
		return nil, fmt.Errorf("leave id is required")
	}
	if req.Action != LeaveActionApprove && req.Action != LeaveActionReject {
		return nil, fmt.Errorf("action must be %q or %q", LeaveActionApprove, LeaveActionReject)
	}

	var leave LeaveRequest
	if err := c.put(ctx, "/leaves/"+url.PathEscape(id)+"/action", req, &leave); err != nil {
		return nil, err
	}
	return &leave, nil
}

// GetApprovedRecordsForDate lists approved requests covering the given date.
func (c *Client) GetApprovedRecordsForDate(ctx context.Context, employeeID, date string) ([]LeaveRequest, error) {
	if employeeID == "" || date == "" {
		return nil, fmt.Errorf("employee id and date are required")
	}

	query := url.Values{}
	query.Set("employeeId", employeeID)
	query.Set("date", date)

	var leaves []LeaveRequest
	if err := c.get(ctx, "/leaves/approved-records", query, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

// GetLeaveSettings fetches the request-form settings for a request type,
// either "leave" or "od".
func (c *Client) GetLeaveSettings(ctx context.Context, requestType string) (*LeaveSettings, error) {
	if requestType != "leave" && requestType != "od" {
		return nil, fmt.Errorf("settings type must be \"leave\" or \"od\", got %q", requestType)
	}

	var settings LeaveSettings
	if err := c.get(ctx, "/leaves/settings/"+requestType, nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetHolidays lists the company holiday calendar.
func (c *Client) GetHolidays(ctx context.Context) ([]Holiday, error) {
	var holidays []Holiday
	if err := c.get(ctx, "/leaves/holidays", nil, &holidays); err != nil {
		return nil, err
	}
	return holidays, nil
}

// GetLeaveStats fetches the caller's leave counters and balances.
func (c *Client) GetLeaveStats(ctx context.Context) (*LeaveStats, error) {
	var stats LeaveStats
	if err := c.get(ctx, "/leaves/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
