package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/frahmantamala/hrms-client/internal/session"
)

// GetEmployee fetches the full employee profile by employee number, the
// enrichment step after login.
func (c *Client) GetEmployee(ctx context.Context, empNo string) (*session.Employee, error) {
	if empNo == "" {
		return nil, fmt.Errorf("employee number is required")
	}

	var employee session.Employee
	if err := c.get(ctx, "/employees/"+url.PathEscape(empNo), nil, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}
