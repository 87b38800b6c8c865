// Package employee serves the profile side of the stub: the users table that
// backs login identities and the employees table holding the richer HR record.
package employee

import (
	"context"

	"github.com/frahmantamala/hrms-client/internal/core/common/validation"
	employeemodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/employee"
	usermodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/user"
	"github.com/frahmantamala/hrms-client/internal/session"
)

type Repository interface {
	GetUserByID(ctx context.Context, id string) (*usermodel.User, error)
	UpdateUser(ctx context.Context, u *usermodel.User) error
	GetEmployeeByEmpNo(ctx context.Context, empNo string) (*employeemodel.Employee, error)
	ListUsersByRoles(ctx context.Context, roles []string) ([]usermodel.User, error)
}

// WireUser maps a stored user row onto the identity shape the client expects.
func WireUser(u *usermodel.User) session.User {
	out := session.User{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		EmpNo:       u.EmpNo,
		EmployeeRef: u.EmployeeRef,
		IsActive:    u.IsActive,
	}
	if u.Department != "" {
		out.Department = &session.OrgUnit{Name: u.Department}
	}
	if u.Division != "" {
		out.Division = &session.OrgUnit{Name: u.Division}
	}
	return out
}

// WireEmployee maps a stored employee row onto the enrichment profile shape.
func WireEmployee(e *employeemodel.Employee) session.Employee {
	out := session.Employee{
		ID:               e.ID,
		EmpNo:            e.EmpNo,
		EmployeeName:     e.EmployeeName,
		EmploymentStatus: e.EmploymentStatus,
		BloodGroup:       e.BloodGroup,
		PersonalEmail:    e.PersonalEmail,
		Address:          e.Address,
	}
	if e.JoiningDate != nil {
		out.JoiningDate = e.JoiningDate.Format(validation.DateLayout)
	}
	if e.Designation != "" {
		out.Designation = &session.NameRef{Name: e.Designation}
	}
	if e.Department != "" {
		out.Department = &session.NameRef{Name: e.Department}
	}
	if e.Division != "" {
		out.Division = &session.NameRef{Name: e.Division}
	}
	if e.ReportingManager != "" {
		out.ReportingManager = &session.ManagerRef{EmployeeName: e.ReportingManager}
	}
	if e.ShiftName != "" || e.ShiftStart != "" || e.ShiftEnd != "" {
		out.Shift = &session.Shift{
			Name:      e.ShiftName,
			StartTime: e.ShiftStart,
			EndTime:   e.ShiftEnd,
		}
	}
	return out
}
