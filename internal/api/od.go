package api

import (
	"context"
	"fmt"
	"net/url"
)

// ODRequest is an on-duty request: authorized work away from the office.
type ODRequest struct {
	ID         string `json:"_id"`
	EmployeeID string `json:"employeeId"`
	FromDate   string `json:"fromDate"`
	ToDate     string `json:"toDate"`
	Place      string `json:"place,omitempty"`
	Purpose    string `json:"purpose"`
	Outcome    string `json:"outcome,omitempty"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// ApplyODRequest is the body for POST /leaves/od.
type ApplyODRequest struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Place    string `json:"place,omitempty"`
	Purpose  string `json:"purpose"`
}

func (r ApplyODRequest) Validate() error {
	if r.FromDate == "" || r.ToDate == "" {
		return fmt.Errorf("from and to dates are required")
	}
	if r.Purpose == "" {
		return fmt.Errorf("purpose is required")
	}
	return nil
}

// GetMyODs lists the caller's on-duty requests.
func (c *Client) GetMyODs(ctx context.Context) ([]ODRequest, error) {
	var ods []ODRequest
	if err := c.get(ctx, "/leaves/od/my", nil, &ods); err != nil {
		return nil, err
	}
	return ods, nil
}

// ApplyOD submits a new on-duty request.
func (c *Client) ApplyOD(ctx context.Context, req ApplyODRequest) (*ODRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var od ODRequest
	if err := c.post(ctx, "/leaves/od", req, &od); err != nil {
		return nil, err
	}
	return &od, nil
}

// UpdateODOutcome records what came out of a completed on-duty trip.
func (c *Client) UpdateODOutcome(ctx context.Context, id, outcome string) (*ODRequest, error) {
	if id == "" {
		return nil, fmt.Errorf("od id is required")
	}
	if outcome == "" {
		return nil, fmt.Errorf("outcome is required")
	}

	body := struct {
		Outcome string `json:"outcome"`
	}{Outcome: outcome}

	var od ODRequest
	if err := c.put(ctx, "/leaves/od/"+url.PathEscape(id)+"/outcome", body, &od); err != nil {
		return nil, err
	}
	return &od, nil
}

// CancelOD withdraws a pending on-duty request.
func (c *Client) CancelOD(ctx context.Context, id string) (*ODRequest, error) {
	if id == "" {
		return nil, fmt.Errorf("od id is required")
	}

	var od ODRequest
	if err := c.put(ctx, "/leaves/od/"+url.PathEscape(id)+"/cancel", nil, &od); err != nil {
		return nil, err
	}
	return &od, nil
}
