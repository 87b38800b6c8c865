package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/hrms-client/internal"
	"github.com/frahmantamala/hrms-client/internal/api"
	"github.com/frahmantamala/hrms-client/internal/core/common/validation"
	leavemodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/leave"
	"github.com/frahmantamala/hrms-client/internal/core/events"
)

const (
	SettingsTypeLeave = "leave"
	SettingsTypeOD    = "od"
)

type Service struct {
	repo   Repository
	events *events.EventBus
}

func NewService(repo Repository, bus *events.EventBus) *Service {
	return &Service{repo: repo, events: bus}
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.events != nil {
		_ = s.events.Publish(ctx, event)
	}
}

// MyLeaves lists the caller's own leave requests, newest first.
func (s *Service) MyLeaves(ctx context.Context, employeeID string) ([]api.LeaveRequest, error) {
	reqs, err := s.repo.ListLeavesByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return wireLeaves(reqs), nil
}

// PendingApprovals lists pending requests from other employees, the stub's
// approximation of a manager's approval queue.
func (s *Service) PendingApprovals(ctx context.Context, employeeID string) ([]api.LeaveRequest, error) {
	reqs, err := s.repo.ListPendingExcluding(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return wireLeaves(reqs), nil
}

// AllLeaves lists requests matching the recognized query filters; unknown
// filters are ignored.
func (s *Service) AllLeaves(ctx context.Context, filters map[string]string) ([]api.LeaveRequest, error) {
	parsed := Filters{
		EmployeeID: filters["employeeId"],
		Status:     filters["status"],
		LeaveType:  filters["leaveType"],
	}
	if v := filters["fromDate"]; v != "" {
		t, err := time.Parse(validation.DateLayout, v)
		if err != nil {
			return nil, internal.NewValidationError("fromDate must be a date in YYYY-MM-DD format", internal.ErrCodeInvalidDate)
		}
		parsed.FromDate = &t
	}
	if v := filters["toDate"]; v != "" {
		t, err := time.Parse(validation.DateLayout, v)
		if err != nil {
			return nil, internal.NewValidationError("toDate must be a date in YYYY-MM-DD format", internal.ErrCodeInvalidDate)
		}
		parsed.ToDate = &t
	}

	reqs, err := s.repo.ListLeaves(ctx, parsed)
	if err != nil {
		return nil, err
	}
	return wireLeaves(reqs), nil
}

// Apply creates a new pending leave request for the caller.
func (s *Service) Apply(ctx context.Context, employeeID string, req api.ApplyLeaveRequest) (*api.LeaveRequest, error) {
	if appErr := validation.ValidateDateRange(req.FromDate, req.ToDate); appErr != nil {
		return nil, appErr
	}
	if appErr := validation.ValidatePurpose(req.Purpose); appErr != nil {
		return nil, appErr
	}
	if req.LeaveType == "" {
		return nil, internal.NewValidationFieldError("leaveType", "leaveType is required", internal.ErrCodeMissingField)
	}
	if req.NumberOfDays <= 0 {
		return nil, internal.NewValidationFieldError("numberOfDays", "numberOfDays must be positive", internal.ErrCodeValidationFailed)
	}

	if settings, err := s.repo.GetSettings(ctx, SettingsTypeLeave); err == nil && settings.MaxDaysPerRequest > 0 {
		if req.NumberOfDays > settings.MaxDaysPerRequest {
			message := fmt.Sprintf("a single request cannot exceed %g days", settings.MaxDaysPerRequest)
			return nil, internal.NewValidationError(message, internal.ErrCodeValidationFailed)
		}
	}

	from, _ := time.Parse(validation.DateLayout, req.FromDate)
	to, _ := time.Parse(validation.DateLayout, req.ToDate)

	record := &leavemodel.Request{
		ID:           uuid.NewString(),
		EmployeeID:   employeeID,
		LeaveType:    req.LeaveType,
		FromDate:     from,
		ToDate:       to,
		NumberOfDays: req.NumberOfDays,
		Purpose:      req.Purpose,
		Status:       leavemodel.StatusPending,
	}

	if err := s.repo.CreateLeave(ctx, record); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewLeaveAppliedEvent(record.ID, employeeID, record.LeaveType, record.NumberOfDays))

	wire := wireLeave(record)
	return &wire, nil
}

// TakeAction approves or rejects a pending request on behalf of the actor.
func (s *Service) TakeAction(ctx context.Context, actorID, leaveID string, req api.LeaveActionRequest) (*api.LeaveRequest, error) {
	if req.Action != api.LeaveActionApprove && req.Action != api.LeaveActionReject {
		return nil, internal.ErrInvalidLeaveAction
	}

	record, err := s.repo.GetLeaveByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}
	if record.Status != leavemodel.StatusPending {
		return nil, internal.ErrInvalidLeaveStatus
	}

	if req.Action == api.LeaveActionApprove {
		record.Status = leavemodel.StatusApproved
	} else {
		record.Status = leavemodel.StatusRejected
	}
	record.Remarks = req.Remarks
	record.ActionBy = actorID

	if err := s.repo.UpdateLeave(ctx, record); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewLeaveActionedEvent(record.ID, record.EmployeeID, req.Action, actorID))

	wire := wireLeave(record)
	return &wire, nil
}

// ApprovedRecords lists approved requests whose range covers the given date.
func (s *Service) ApprovedRecords(ctx context.Context, employeeID, date string) ([]api.LeaveRequest, error) {
	if appErr := validation.ValidateDate("date", date); appErr != nil {
		return nil, appErr
	}
	day, _ := time.Parse(validation.DateLayout, date)

	reqs, err := s.repo.ListApprovedCovering(ctx, employeeID, day)
	if err != nil {
		return nil, err
	}
	return wireLeaves(reqs), nil
}

// Settings fetches the request-form settings for "leave" or "od".
func (s *Service) Settings(ctx context.Context, requestType string) (*api.LeaveSettings, error) {
	if requestType != SettingsTypeLeave && requestType != SettingsTypeOD {
		return nil, internal.NewValidationError("settings type must be leave or od", internal.ErrCodeValidationFailed)
	}

	record, err := s.repo.GetSettings(ctx, requestType)
	if err != nil {
		return nil, err
	}

	wire := wireSettings(record)
	return &wire, nil
}

// Holidays lists the company holiday calendar.
func (s *Service) Holidays(ctx context.Context) ([]api.Holiday, error) {
	records, err := s.repo.ListHolidays(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]api.Holiday, 0, len(records))
	for _, h := range records {
		out = append(out, api.Holiday{
			ID:       h.ID,
			Name:     h.Name,
			Date:     h.Date.Format(validation.DateLayout),
			Optional: h.Optional,
		})
	}
	return out, nil
}

// Stats tallies the caller's requests and sums approved days per leave type.
func (s *Service) Stats(ctx context.Context, employeeID string) (*api.LeaveStats, error) {
	counts, err := s.repo.CountByStatus(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	balances, err := s.repo.SumApprovedDaysByType(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return &api.LeaveStats{
		Total:    counts.Total,
		Pending:  counts.Pending,
		Approved: counts.Approved,
		Rejected: counts.Rejected,
		Balances: balances,
	}, nil
}

// MyODs lists the caller's on-duty requests.
func (s *Service) MyODs(ctx context.Context, employeeID string) ([]api.ODRequest, error) {
	ods, err := s.repo.ListODsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]api.ODRequest, 0, len(ods))
	for i := range ods {
		out = append(out, wireOD(&ods[i]))
	}
	return out, nil
}

// ApplyOD creates a new pending on-duty request for the caller.
func (s *Service) ApplyOD(ctx context.Context, employeeID string, req api.ApplyODRequest) (*api.ODRequest, error) {
	if appErr := validation.ValidateDateRange(req.FromDate, req.ToDate); appErr != nil {
		return nil, appErr
	}
	if appErr := validation.ValidatePurpose(req.Purpose); appErr != nil {
		return nil, appErr
	}

	from, _ := time.Parse(validation.DateLayout, req.FromDate)
	to, _ := time.Parse(validation.DateLayout, req.ToDate)

	record := &leavemodel.ODRequest{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		FromDate:   from,
		ToDate:     to,
		Place:      req.Place,
		Purpose:    req.Purpose,
		Status:     leavemodel.StatusPending,
	}

	if err := s.repo.CreateOD(ctx, record); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewODAppliedEvent(record.ID, employeeID, record.Purpose))

	wire := wireOD(record)
	return &wire, nil
}

// UpdateODOutcome records what came out of the caller's on-duty trip.
func (s *Service) UpdateODOutcome(ctx context.Context, employeeID, id, outcome string) (*api.ODRequest, error) {
	if outcome == "" {
		return nil, internal.NewValidationFieldError("outcome", "outcome is required", internal.ErrCodeMissingField)
	}

	record, err := s.repo.GetODByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.EmployeeID != employeeID {
		return nil, internal.ErrODNotFound
	}
	if record.Status == leavemodel.StatusCancelled {
		return nil, internal.ErrInvalidLeaveStatus
	}

	record.Outcome = outcome
	if err := s.repo.UpdateOD(ctx, record); err != nil {
		return nil, err
	}

	wire := wireOD(record)
	return &wire, nil
}

// CancelOD withdraws the caller's pending on-duty request.
func (s *Service) CancelOD(ctx context.Context, employeeID, id string) (*api.ODRequest, error) {
	record, err := s.repo.GetODByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.EmployeeID != employeeID {
		return nil, internal.ErrODNotFound
	}
	if record.Status == leavemodel.StatusCancelled {
		return nil, internal.ErrAlreadyCancelled
	}
	if record.Status != leavemodel.StatusPending {
		return nil, internal.ErrInvalidLeaveStatus
	}

	record.Status = leavemodel.StatusCancelled
	if err := s.repo.UpdateOD(ctx, record); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewODCancelledEvent(record.ID, employeeID))

	wire := wireOD(record)
	return &wire, nil
}

// ValidateCCLDate reports whether the date is a company holiday and therefore
// claimable for compensatory leave.
func (s *Service) ValidateCCLDate(ctx context.Context, date string) (*api.CCLDateValidation, error) {
	if appErr := validation.ValidateDate("date", date); appErr != nil {
		return nil, appErr
	}
	day, _ := time.Parse(validation.DateLayout, date)

	holiday, err := s.repo.GetHolidayByDate(ctx, day)
	if err != nil {
		if appErr, ok := internal.IsAppError(err); ok && appErr.Type == internal.ErrorTypeNotFound {
			return &api.CCLDateValidation{Valid: false}, nil
		}
		return nil, err
	}

	return &api.CCLDateValidation{Valid: true, Holiday: holiday.Name}, nil
}

// ApplyCCL creates a compensatory claim after verifying the worked date was
// actually a holiday.
func (s *Service) ApplyCCL(ctx context.Context, employeeID string, req api.ApplyCCLRequest) (*api.CCLRequest, error) {
	if appErr := validation.ValidateDate("workedDate", req.WorkedDate); appErr != nil {
		return nil, appErr
	}
	if req.AssignedBy == "" {
		return nil, internal.NewValidationFieldError("assignedBy", "assignedBy is required", internal.ErrCodeMissingField)
	}

	day, _ := time.Parse(validation.DateLayout, req.WorkedDate)
	if _, err := s.repo.GetHolidayByDate(ctx, day); err != nil {
		if appErr, ok := internal.IsAppError(err); ok && appErr.Type == internal.ErrorTypeNotFound {
			return nil, internal.ErrNotAHoliday
		}
		return nil, err
	}

	record := &leavemodel.CCLRequest{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		WorkedDate: day,
		AssignedBy: req.AssignedBy,
		Purpose:    req.Purpose,
		Status:     leavemodel.StatusPending,
	}

	if err := s.repo.CreateCCL(ctx, record); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewCCLAppliedEvent(record.ID, employeeID, req.WorkedDate))

	wire := wireCCL(record)
	return &wire, nil
}

// MyCCLs lists the caller's compensatory claims.
func (s *Service) MyCCLs(ctx context.Context, employeeID string) ([]api.CCLRequest, error) {
	ccls, err := s.repo.ListCCLsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]api.CCLRequest, 0, len(ccls))
	for i := range ccls {
		out = append(out, wireCCL(&ccls[i]))
	}
	return out, nil
}
