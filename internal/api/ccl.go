package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/frahmantamala/hrms-client/internal/session"
)

// CCLRequest is a compensatory casual leave claim: credit for having worked
// on a company holiday, subject to backend validation of the claimed date.
type CCLRequest struct {
	ID         string `json:"_id"`
	EmployeeID string `json:"employeeId"`
	WorkedDate string `json:"workedDate"`
	AssignedBy string `json:"assignedBy,omitempty"`
	Purpose    string `json:"purpose,omitempty"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// ApplyCCLRequest is the body for POST /leaves/ccl.
type ApplyCCLRequest struct {
	WorkedDate string `json:"workedDate"`
	AssignedBy string `json:"assignedBy"`
	Purpose    string `json:"purpose,omitempty"`
}

func (r ApplyCCLRequest) Validate() error {
	if r.WorkedDate == "" {
		return fmt.Errorf("worked date is required")
	}
	if r.AssignedBy == "" {
		return fmt.Errorf("assigning user is required")
	}
	return nil
}

// CCLDateValidation is the backend's verdict on a claimed holiday date.
type CCLDateValidation struct {
	Valid   bool   `json:"valid"`
	Holiday string `json:"holiday,omitempty"`
}

// ValidateCCLDate asks the backend whether the given date is claimable.
func (c *Client) ValidateCCLDate(ctx context.Context, date string) (*CCLDateValidation, error) {
	if date == "" {
		return nil, fmt.Errorf("date is required")
	}

	query := url.Values{}
	query.Set("date", date)

	var validation CCLDateValidation
	if err := c.get(ctx, "/leaves/ccl/validate-date", query, &validation); err != nil {
		return nil, err
	}
	return &validation, nil
}

// ApplyCCL submits a new compensatory leave claim.
func (c *Client) ApplyCCL(ctx context.Context, req ApplyCCLRequest) (*CCLRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var ccl CCLRequest
	if err := c.post(ctx, "/leaves/ccl", req, &ccl); err != nil {
		return nil, err
	}
	return &ccl, nil
}

// GetCCLVerifiers lists the users a claim can name as its assigner.
func (c *Client) GetCCLVerifiers(ctx context.Context) ([]session.User, error) {
	var users []session.User
	if err := c.get(ctx, "/leaves/ccl/assigned-by-users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetMyCCLRequests lists the caller's compensatory leave claims.
func (c *Client) GetMyCCLRequests(ctx context.Context) ([]CCLRequest, error) {
	var ccls []CCLRequest
	if err := c.get(ctx, "/leaves/ccl/my", nil, &ccls); err != nil {
		return nil, err
	}
	return ccls, nil
}
