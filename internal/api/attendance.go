package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// AttendanceRecord is one day's punch record. Empty punch fields mean no
// punch happened; a missing record for a date surfaces as a 404 instead.
type AttendanceRecord struct {
	ID             string  `json:"_id"`
	EmployeeNumber string  `json:"employeeNumber"`
	Date           string  `json:"date"`
	PunchIn        string  `json:"punchIn,omitempty"`
	PunchOut       string  `json:"punchOut,omitempty"`
	Status         string  `json:"status"`
	LateMinutes    int     `json:"lateMinutes,omitempty"`
	WorkedHours    float64 `json:"workedHours,omitempty"`
}

// AttendanceListRequest selects a date range; Page and Limit are forwarded
// as-is when positive, the client does no pagination of its own.
type AttendanceListRequest struct {
	EmployeeNumber string
	StartDate      string
	EndDate        string
	Page           int
	Limit          int
}

type AttendanceList struct {
	Records []AttendanceRecord `json:"records"`
	Total   int64              `json:"total"`
	Page    int                `json:"page"`
	Limit   int                `json:"limit"`
}

// GetAttendanceDetail fetches the punch record for one employee and date.
func (c *Client) GetAttendanceDetail(ctx context.Context, employeeNumber, date string) (*AttendanceRecord, error) {
	if employeeNumber == "" || date == "" {
		return nil, fmt.Errorf("employee number and date are required")
	}

	query := url.Values{}
	query.Set("employeeNumber", employeeNumber)
	query.Set("date", date)

	var record AttendanceRecord
	if err := c.get(ctx, "/attendance/detail", query, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetAttendanceList fetches punch records for a date range.
func (c *Client) GetAttendanceList(ctx context.Context, req AttendanceListRequest) (*AttendanceList, error) {
	if req.EmployeeNumber == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, fmt.Errorf("employee number, start date and end date are required")
	}

	query := url.Values{}
	query.Set("employeeNumber", req.EmployeeNumber)
	query.Set("startDate", req.StartDate)
	query.Set("endDate", req.EndDate)
	if req.Page > 0 {
		query.Set("page", strconv.Itoa(req.Page))
	}
	if req.Limit > 0 {
		query.Set("limit", strconv.Itoa(req.Limit))
	}

	var list AttendanceList
	if err := c.get(ctx, "/attendance/list", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
