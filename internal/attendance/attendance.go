// Package attendance serves punch records: a single day's detail and paged
// range listings.
package attendance

import (
	"context"
	"time"

	"github.com/frahmantamala/hrms-client/internal/api"
	"github.com/frahmantamala/hrms-client/internal/core/common/validation"
	attendancemodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/attendance"
)

type Repository interface {
	GetByEmployeeAndDate(ctx context.Context, employeeNumber string, date time.Time) (*attendancemodel.Record, error)
	ListByRange(ctx context.Context, employeeNumber string, from, to time.Time, limit, offset int) ([]attendancemodel.Record, int64, error)
}

// WireRecord maps a stored punch row onto the wire shape.
func WireRecord(rec *attendancemodel.Record) api.AttendanceRecord {
	out := api.AttendanceRecord{
		ID:             rec.ID,
		EmployeeNumber: rec.EmployeeNumber,
		Date:           rec.Date.Format(validation.DateLayout),
		Status:         rec.Status,
		LateMinutes:    rec.LateMinutes,
		WorkedHours:    rec.WorkedHours,
	}
	if rec.PunchIn != nil {
		out.PunchIn = *rec.PunchIn
	}
	if rec.PunchOut != nil {
		out.PunchOut = *rec.PunchOut
	}
	return out
}
