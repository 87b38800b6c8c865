package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/hrms-client/internal"
	"github.com/frahmantamala/hrms-client/internal/attendance"
	attendancemodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/attendance"
)

// AttendanceRepository implements the attendance.Repository interface using GORM
type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendance.Repository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeNumber string, date time.Time) (*attendancemodel.Record, error) {
	var rec attendancemodel.Record
	err := r.db.WithContext(ctx).
		Where("employee_number = ? AND date = ?", employeeNumber, date).
		First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrAttendanceNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *AttendanceRepository) ListByRange(ctx context.Context, employeeNumber string, from, to time.Time, limit, offset int) ([]attendancemodel.Record, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&attendancemodel.Record{}).
		Where("employee_number = ? AND date BETWEEN ? AND ?", employeeNumber, from, to)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []attendancemodel.Record
	err := base.
		Order("date DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	return records, total, err
}
