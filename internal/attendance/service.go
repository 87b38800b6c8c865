package attendance

import (
	"context"
	"time"

	"github.com/frahmantamala/hrms-client/internal/api"
	"github.com/frahmantamala/hrms-client/internal/core/common/validation"
)

const (
	defaultPageLimit = 31
	maxPageLimit     = 100
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetDetail fetches one employee's punch record for a single date.
func (s *Service) GetDetail(ctx context.Context, employeeNumber, date string) (*api.AttendanceRecord, error) {
	if appErr := validation.ValidateDate("date", date); appErr != nil {
		return nil, appErr
	}
	day, _ := time.Parse(validation.DateLayout, date)

	record, err := s.repo.GetByEmployeeAndDate(ctx, employeeNumber, day)
	if err != nil {
		return nil, err
	}

	wire := WireRecord(record)
	return &wire, nil
}

// List fetches punch records for a date range with page/limit paging.
func (s *Service) List(ctx context.Context, employeeNumber, startDate, endDate string, page, limit int) (*api.AttendanceList, error) {
	if appErr := validation.ValidateDateRange(startDate, endDate); appErr != nil {
		return nil, appErr
	}
	from, _ := time.Parse(validation.DateLayout, startDate)
	to, _ := time.Parse(validation.DateLayout, endDate)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset := (page - 1) * limit

	records, total, err := s.repo.ListByRange(ctx, employeeNumber, from, to, limit, offset)
	if err != nil {
		return nil, err
	}

	wire := make([]api.AttendanceRecord, 0, len(records))
	for i := range records {
		wire = append(wire, WireRecord(&records[i]))
	}

	return &api.AttendanceList{
		Records: wire,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}
