package employee

import (
	"context"

	"github.com/frahmantamala/hrms-client/internal/session"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetEmployee fetches the enrichment profile by employee number.
func (s *Service) GetEmployee(ctx context.Context, empNo string) (*session.Employee, error) {
	record, err := s.repo.GetEmployeeByEmpNo(ctx, empNo)
	if err != nil {
		return nil, err
	}
	wire := WireEmployee(record)
	return &wire, nil
}

// UpdateProfile applies a merge patch to the caller's identity record. Nil
// patch fields keep their stored value.
func (s *Service) UpdateProfile(ctx context.Context, userID string, patch session.UserPatch) (*session.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.EmpNo != nil {
		user.EmpNo = *patch.EmpNo
	}
	if patch.EmployeeRef != nil {
		user.EmployeeRef = *patch.EmployeeRef
	}
	if patch.Department != nil {
		user.Department = patch.Department.Name
	}
	if patch.Division != nil {
		user.Division = patch.Division.Name
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	wire := WireUser(user)
	return &wire, nil
}

// CCLVerifierRoles are the roles allowed to vouch for holiday work claims.
var CCLVerifierRoles = []string{"manager", "hr", "admin"}

// ListVerifiers lists users a compensatory leave claim can name as assigner.
func (s *Service) ListVerifiers(ctx context.Context) ([]session.User, error) {
	users, err := s.repo.ListUsersByRoles(ctx, CCLVerifierRoles)
	if err != nil {
		return nil, err
	}
	out := make([]session.User, 0, len(users))
	for i := range users {
		out = append(out, WireUser(&users[i]))
	}
	return out, nil
}
