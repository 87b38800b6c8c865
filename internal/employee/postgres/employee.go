package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/frahmantamala/hrms-client/internal"
	employeemodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/employee"
	usermodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/user"
	"github.com/frahmantamala/hrms-client/internal/employee"
)

// EmployeeRepository implements the employee.Repository interface using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetUserByID(ctx context.Context, id string) (*usermodel.User, error) {
	var u usermodel.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *EmployeeRepository) UpdateUser(ctx context.Context, u *usermodel.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *EmployeeRepository) GetEmployeeByEmpNo(ctx context.Context, empNo string) (*employeemodel.Employee, error) {
	var e employeemodel.Employee
	err := r.db.WithContext(ctx).Where("emp_no = ?", empNo).First(&e).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) ListUsersByRoles(ctx context.Context, roles []string) ([]usermodel.User, error) {
	var users []usermodel.User
	err := r.db.WithContext(ctx).
		Where("role IN ?", roles).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&users).Error
	return users, err
}
