package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/hrms-client/internal"
	leavemodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/leave"
	"github.com/frahmantamala/hrms-client/internal/leave"
)

// LeaveRepository implements the leave.Repository interface using GORM
type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) leave.Repository {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) CreateLeave(ctx context.Context, req *leavemodel.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *LeaveRepository) GetLeaveByID(ctx context.Context, id string) (*leavemodel.Request, error) {
	var req leavemodel.Request
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrLeaveNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *LeaveRepository) UpdateLeave(ctx context.Context, req *leavemodel.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *LeaveRepository) ListLeavesByEmployee(ctx context.Context, employeeID string) ([]leavemodel.Request, error) {
	var reqs []leavemodel.Request
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *LeaveRepository) ListPendingExcluding(ctx context.Context, employeeID string) ([]leavemodel.Request, error) {
	var reqs []leavemodel.Request
	err := r.db.WithContext(ctx).
		Where("status = ? AND employee_id <> ?", leavemodel.StatusPending, employeeID).
		Order("created_at ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *LeaveRepository) ListLeaves(ctx context.Context, filters leave.Filters) ([]leavemodel.Request, error) {
	query := r.db.WithContext(ctx).Model(&leavemodel.Request{})

	if filters.EmployeeID != "" {
		query = query.Where("employee_id = ?", filters.EmployeeID)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.LeaveType != "" {
		query = query.Where("leave_type = ?", filters.LeaveType)
	}
	if filters.FromDate != nil {
		query = query.Where("to_date >= ?", *filters.FromDate)
	}
	if filters.ToDate != nil {
		query = query.Where("from_date <= ?", *filters.ToDate)
	}

	var reqs []leavemodel.Request
	err := query.Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

func (r *LeaveRepository) ListApprovedCovering(ctx context.Context, employeeID string, date time.Time) ([]leavemodel.Request, error) {
	var reqs []leavemodel.Request
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status = ? AND from_date <= ? AND to_date >= ?",
			employeeID, leavemodel.StatusApproved, date, date).
		Order("from_date ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *LeaveRepository) CountByStatus(ctx context.Context, employeeID string) (leave.StatusCounts, error) {
	type row struct {
		Status string
		N      int
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&leavemodel.Request{}).
		Select("status, count(*) as n").
		Where("employee_id = ?", employeeID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return leave.StatusCounts{}, err
	}

	var counts leave.StatusCounts
	for _, rw := range rows {
		counts.Total += rw.N
		switch rw.Status {
		case leavemodel.StatusPending:
			counts.Pending = rw.N
		case leavemodel.StatusApproved:
			counts.Approved = rw.N
		case leavemodel.StatusRejected:
			counts.Rejected = rw.N
		}
	}
	return counts, nil
}

func (r *LeaveRepository) SumApprovedDaysByType(ctx context.Context, employeeID string) (map[string]float64, error) {
	type row struct {
		LeaveType string
		Days      float64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&leavemodel.Request{}).
		Select("leave_type, sum(number_of_days) as days").
		Where("employee_id = ? AND status = ?", employeeID, leavemodel.StatusApproved).
		Group("leave_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	balances := make(map[string]float64, len(rows))
	for _, rw := range rows {
		balances[rw.LeaveType] = rw.Days
	}
	return balances, nil
}

func (r *LeaveRepository) CreateOD(ctx context.Context, od *leavemodel.ODRequest) error {
	return r.db.WithContext(ctx).Create(od).Error
}

func (r *LeaveRepository) GetODByID(ctx context.Context, id string) (*leavemodel.ODRequest, error) {
	var od leavemodel.ODRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&od).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrODNotFound
		}
		return nil, err
	}
	return &od, nil
}

func (r *LeaveRepository) UpdateOD(ctx context.Context, od *leavemodel.ODRequest) error {
	return r.db.WithContext(ctx).Save(od).Error
}

func (r *LeaveRepository) ListODsByEmployee(ctx context.Context, employeeID string) ([]leavemodel.ODRequest, error) {
	var ods []leavemodel.ODRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&ods).Error
	return ods, err
}

func (r *LeaveRepository) CreateCCL(ctx context.Context, ccl *leavemodel.CCLRequest) error {
	return r.db.WithContext(ctx).Create(ccl).Error
}

func (r *LeaveRepository) ListCCLsByEmployee(ctx context.Context, employeeID string) ([]leavemodel.CCLRequest, error) {
	var ccls []leavemodel.CCLRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&ccls).Error
	return ccls, err
}

func (r *LeaveRepository) GetHolidayByDate(ctx context.Context, date time.Time) (*leavemodel.Holiday, error) {
	var holiday leavemodel.Holiday
	err := r.db.WithContext(ctx).Where("date = ?", date).First(&holiday).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.NewNotFoundError("No holiday on this date", internal.ErrCodeNotAHoliday)
		}
		return nil, err
	}
	return &holiday, nil
}

func (r *LeaveRepository) ListHolidays(ctx context.Context) ([]leavemodel.Holiday, error) {
	var holidays []leavemodel.Holiday
	err := r.db.WithContext(ctx).Order("date ASC").Find(&holidays).Error
	return holidays, err
}

func (r *LeaveRepository) GetSettings(ctx context.Context, requestType string) (*leavemodel.Settings, error) {
	var settings leavemodel.Settings
	err := r.db.WithContext(ctx).Where("request_type = ?", requestType).First(&settings).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.NewNotFoundError("Leave settings not found", internal.ErrCodeSettingsNotFound)
		}
		return nil, err
	}
	return &settings, nil
}
