package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/hrms-client/internal"
	"github.com/frahmantamala/hrms-client/internal/api"
	leavemodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/leave"
	"github.com/frahmantamala/hrms-client/internal/core/events"
)

func TestLeave(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Leave Module Suite")
}

// Mock Repository for testing
type mockRepository struct {
	leaves   map[string]*leavemodel.Request
	ods      map[string]*leavemodel.ODRequest
	ccls     map[string]*leavemodel.CCLRequest
	holidays map[string]*leavemodel.Holiday
	settings map[string]*leavemodel.Settings

	counts      StatusCounts
	balances    map[string]float64
	returnError bool
	errorToRet  error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		leaves:   make(map[string]*leavemodel.Request),
		ods:      make(map[string]*leavemodel.ODRequest),
		ccls:     make(map[string]*leavemodel.CCLRequest),
		holidays: make(map[string]*leavemodel.Holiday),
		settings: make(map[string]*leavemodel.Settings),
		balances: make(map[string]float64),
	}
}

func (m *mockRepository) setError(err error) {
	m.returnError = true
	m.errorToRet = err
}

func (m *mockRepository) clearError() {
	m.returnError = false
	m.errorToRet = nil
}

func (m *mockRepository) CreateLeave(_ context.Context, req *leavemodel.Request) error {
	if m.returnError {
		return m.errorToRet
	}
	m.leaves[req.ID] = req
	return nil
}

func (m *mockRepository) GetLeaveByID(_ context.Context, id string) (*leavemodel.Request, error) {
	if m.returnError {
		return nil, m.errorToRet
	}
	if req, ok := m.leaves[id]; ok {
		return req, nil
	}
	return nil, internal.ErrLeaveNotFound
}

func (m *mockRepository) UpdateLeave(_ context.Context, req *leavemodel.Request) error {
	if m.returnError {
		return m.errorToRet
	}
	m.leaves[req.ID] = req
	return nil
}

func (m *mockRepository) ListLeavesByEmployee(_ context.Context, employeeID string) ([]leavemodel.Request, error) {
	if m.returnError {
		return nil, m.errorToRet
	}
	var out []leavemodel.Request
	for _, req := range m.leaves {
		if req.EmployeeID == employeeID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (m *mockRepository) ListPendingExcluding(_ context.Context, employeeID string) ([]leavemodel.Request, error) {
	if m.returnError {
		return nil, m.errorToRet
	}
	var out []leavemodel.Request
	for _, req := range m.leaves {
		if req.Status == leavemodel.StatusPending && req.EmployeeID != employeeID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (m *mockRepository) ListLeaves(_ context.Context, filters Filters) ([]leavemodel.Request, error) {
	if m.returnError {
		return nil, m.errorToRet
	}
	var out []leavemodel.Request
	for _, req := range m.leaves {
		if filters.EmployeeID != "" && req.EmployeeID != filters.EmployeeID {
			continue
		}
		if filters.Status != "" && req.Status != filters.Status {
			continue
		}
		if filters.LeaveType != "" && req.LeaveType != filters.LeaveType {
			continue
		}
		out = append(out, *req)
	}
	return out, nil
}

func (m *mockRepository) ListApprovedCovering(_ context.Context, employeeID string, date time.Time) ([]leavemodel.Request, error) {
	if m.returnError {
		return nil, m.errorToRet
	}
	var out []leavemodel.Request
	for _, req := range m.leaves {
		if req.EmployeeID != employeeID || req.Status != leavemodel.StatusApproved {
			continue
		}
		if date.Before(req.FromDate) || date.After(req.ToDate) {
			continue
		}
		out = append(out, *req)
	}
	return out, nil
}

func (m *mockRepository) CountByStatus(_ context.Context, _ string) (StatusCounts, error) {
	if m.returnError {
		return StatusCounts{}, m.errorToRet
	}
	return m.counts, nil
}

func (m *mockRepository) SumApprovedDaysByType(_ context.Context, _ string) (map[string]float64, error) {
	if m.returnError {
		return nil, m.errorToRet
	}
	return m.balances, nil
}

func (m *mockRepository) CreateOD(_ context.Context, od *leavemodel.ODRequest) error {
	if m.returnError {
		return m.errorToRet
	}
	m.ods[od.ID] = od
	return nil
}

func (m *mockRepository) GetODByID(_ context.Context, id string) (*leavemodel.ODRequest, error) {
	if m.returnError {
		return nil, m.errorToRet
	}
	if od, ok := m.ods[id]; ok {
		return od, nil
	}
	return nil, internal.ErrODNotFound
}

func (m *mockRepository) UpdateOD(_ context.Context, od *leavemodel.ODRequest) error {
	if m.returnError {
		return m.errorToRet
	}
	m.ods[od.ID] = od
	return nil
}

func (m *mockRepository) ListODsByEmployee(_ context.Context, employeeID string) ([]leavemodel.ODRequest, error) {
	if m.returnError {
		return nil, m.errorToRet
	}
	var out []leavemodel.ODRequest
	for _, od := range m.ods {
		if od.EmployeeID == employeeID {
			out = append(out, *od)
		}
	}
	return out, nil
}

func (m *mockRepository) CreateCCL(_ context.Context, ccl *leavemodel.CCLRequest) error {
	if m.returnError {
		return m.errorToRet
	}
	m.ccls[ccl.ID] = ccl
	return nil
}

func (m *mockRepository) ListCCLsByEmployee(_ context.Context, employeeID string) ([]leavemodel.CCLRequest, error) {
	if m.returnError {
		return nil, m.errorToRet
	}
	var out []leavemodel.CCLRequest
	for _, ccl := range m.ccls {
		if ccl.EmployeeID == employeeID {
			out = append(out, *ccl)
		}
	}
	return out, nil
}

func (m *mockRepository) GetHolidayByDate(_ context.Context, date time.Time) (*leavemodel.Holiday, error) {
	if m.returnError {
		return nil, m.errorToRet
	}
	if h, ok := m.holidays[date.Format("2006-01-02")]; ok {
		return h, nil
	}
	return nil, internal.NewNotFoundError("No holiday on this date", internal.ErrCodeNotAHoliday)
}

func (m *mockRepository) ListHolidays(_ context.Context) ([]leavemodel.Holiday, error) {
	if m.returnError {
		return nil, m.errorToRet
	}
	var out []leavemodel.Holiday
	for _, h := range m.holidays {
		out = append(out, *h)
	}
	return out, nil
}

func (m *mockRepository) GetSettings(_ context.Context, requestType string) (*leavemodel.Settings, error) {
	if m.returnError {
		return nil, m.errorToRet
	}
	if s, ok := m.settings[requestType]; ok {
		return s, nil
	}
	return nil, internal.NewNotFoundError("Leave settings not found", internal.ErrCodeSettingsNotFound)
}

var _ = ginkgo.Describe("LeaveService", func() {
	var (
		service  *Service
		mockRepo *mockRepository
		ctx      context.Context
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRepository()
		service = NewService(mockRepo, events.NewEventBus(nil))
		ctx = context.Background()
	})

	ginkgo.Describe("Apply", func() {
		validRequest := api.ApplyLeaveRequest{
			LeaveType:    "vacation",
			FromDate:     "2026-09-07",
			ToDate:       "2026-09-09",
			NumberOfDays: 3,
			Purpose:      "family trip",
		}

		ginkgo.Context("when the request is valid", func() {
			ginkgo.It("should create a pending request for the caller", func() {
				// When
				created, err := service.Apply(ctx, "emp-1", validRequest)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(created.ID).ToNot(gomega.BeEmpty())
				gomega.Expect(created.EmployeeID).To(gomega.Equal("emp-1"))
				gomega.Expect(created.Status).To(gomega.Equal(api.LeaveStatusPending))
				gomega.Expect(mockRepo.leaves).To(gomega.HaveLen(1))
			})
		})

		ginkgo.Context("when dates are malformed", func() {
			ginkgo.It("should fail validation", func() {
				bad := validRequest
				bad.FromDate = "07-09-2026"

				_, err := service.Apply(ctx, "emp-1", bad)

				gomega.Expect(err).To(gomega.HaveOccurred())
				appErr, ok := internal.IsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeValidation))
			})
		})

		ginkgo.Context("when the range is reversed", func() {
			ginkgo.It("should fail validation", func() {
				bad := validRequest
				bad.FromDate = "2026-09-09"
				bad.ToDate = "2026-09-07"

				_, err := service.Apply(ctx, "emp-1", bad)

				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(mockRepo.leaves).To(gomega.BeEmpty())
			})
		})

		ginkgo.Context("when the leave type is missing", func() {
			ginkgo.It("should fail validation", func() {
				bad := validRequest
				bad.LeaveType = ""

				_, err := service.Apply(ctx, "emp-1", bad)

				gomega.Expect(err).To(gomega.HaveOccurred())
			})
		})

		ginkgo.Context("when settings cap the request length", func() {
			ginkgo.It("should refuse requests over the cap", func() {
				// Given a 2-day cap
				mockRepo.settings[SettingsTypeLeave] = &leavemodel.Settings{
					RequestType:       SettingsTypeLeave,
					MaxDaysPerRequest: 2,
				}

				// When
				_, err := service.Apply(ctx, "emp-1", validRequest)

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				appErr, ok := internal.IsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeValidation))
			})

			ginkgo.It("should allow requests within the cap", func() {
				mockRepo.settings[SettingsTypeLeave] = &leavemodel.Settings{
					RequestType:       SettingsTypeLeave,
					MaxDaysPerRequest: 5,
				}

				_, err := service.Apply(ctx, "emp-1", validRequest)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
			})
		})
	})

	ginkgo.Describe("TakeAction", func() {
		ginkgo.BeforeEach(func() {
			mockRepo.leaves["leave-1"] = &leavemodel.Request{
				ID:         "leave-1",
				EmployeeID: "emp-1",
				LeaveType:  "vacation",
				Status:     leavemodel.StatusPending,
			}
		})

		ginkgo.Context("when approving a pending request", func() {
			ginkgo.It("should mark it approved and record the actor", func() {
				// When
				updated, err := service.TakeAction(ctx, "mgr-1", "leave-1", api.LeaveActionRequest{
					Action:  api.LeaveActionApprove,
					Remarks: "enjoy",
				})

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(updated.Status).To(gomega.Equal(api.LeaveStatusApproved))
				gomega.Expect(updated.ActionBy).To(gomega.Equal("mgr-1"))
				gomega.Expect(updated.Remarks).To(gomega.Equal("enjoy"))
			})
		})

		ginkgo.Context("when rejecting a pending request", func() {
			ginkgo.It("should mark it rejected", func() {
				updated, err := service.TakeAction(ctx, "mgr-1", "leave-1", api.LeaveActionRequest{
					Action: api.LeaveActionReject,
				})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(updated.Status).To(gomega.Equal(api.LeaveStatusRejected))
			})
		})

		ginkgo.Context("when the action is not approve or reject", func() {
			ginkgo.It("should refuse it", func() {
				_, err := service.TakeAction(ctx, "mgr-1", "leave-1", api.LeaveActionRequest{Action: "escalate"})

				gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidLeaveAction))
			})
		})

		ginkgo.Context("when the request is no longer pending", func() {
			ginkgo.It("should refuse a second decision", func() {
				mockRepo.leaves["leave-1"].Status = leavemodel.StatusApproved

				_, err := service.TakeAction(ctx, "mgr-1", "leave-1", api.LeaveActionRequest{Action: api.LeaveActionApprove})

				gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidLeaveStatus))
			})
		})

		ginkgo.Context("when the request does not exist", func() {
			ginkgo.It("should return not found", func() {
				_, err := service.TakeAction(ctx, "mgr-1", "leave-404", api.LeaveActionRequest{Action: api.LeaveActionApprove})

				gomega.Expect(err).To(gomega.Equal(internal.ErrLeaveNotFound))
			})
		})
	})

	ginkgo.Describe("PendingApprovals", func() {
		ginkgo.It("should exclude the caller's own requests", func() {
			// Given pending requests from two employees
			mockRepo.leaves["mine"] = &leavemodel.Request{ID: "mine", EmployeeID: "emp-1", Status: leavemodel.StatusPending}
			mockRepo.leaves["theirs"] = &leavemodel.Request{ID: "theirs", EmployeeID: "emp-2", Status: leavemodel.StatusPending}

			// When
			pending, err := service.PendingApprovals(ctx, "emp-1")

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(pending).To(gomega.HaveLen(1))
			gomega.Expect(pending[0].EmployeeID).To(gomega.Equal("emp-2"))
		})
	})

	ginkgo.Describe("AllLeaves", func() {
		ginkgo.It("should reject malformed date filters", func() {
			_, err := service.AllLeaves(ctx, map[string]string{"fromDate": "not-a-date"})

			gomega.Expect(err).To(gomega.HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeInvalidDate))
		})
	})

	ginkgo.Describe("Settings", func() {
		ginkgo.It("should reject unknown settings types", func() {
			_, err := service.Settings(ctx, "expense")

			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should split the stored reasons list", func() {
			mockRepo.settings[SettingsTypeLeave] = &leavemodel.Settings{
				RequestType: SettingsTypeLeave,
				Reasons:     "vacation, sick, family",
			}

			settings, err := service.Settings(ctx, SettingsTypeLeave)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(settings.Reasons).To(gomega.Equal([]string{"vacation", "sick", "family"}))
		})
	})

	ginkgo.Describe("Stats", func() {
		ginkgo.It("should combine counters and balances", func() {
			mockRepo.counts = StatusCounts{Total: 5, Pending: 1, Approved: 3, Rejected: 1}
			mockRepo.balances = map[string]float64{"vacation": 6.5}

			stats, err := service.Stats(ctx, "emp-1")

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(stats.Total).To(gomega.Equal(5))
			gomega.Expect(stats.Approved).To(gomega.Equal(3))
			gomega.Expect(stats.Balances).To(gomega.HaveKeyWithValue("vacation", 6.5))
		})

		ginkgo.It("should propagate repository errors", func() {
			mockRepo.setError(errors.New("database down"))
			defer mockRepo.clearError()

			_, err := service.Stats(ctx, "emp-1")

			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("CancelOD", func() {
		ginkgo.BeforeEach(func() {
			mockRepo.ods["od-1"] = &leavemodel.ODRequest{
				ID:         "od-1",
				EmployeeID: "emp-1",
				Status:     leavemodel.StatusPending,
			}
		})

		ginkgo.Context("when the request is pending and owned by the caller", func() {
			ginkgo.It("should cancel it", func() {
				cancelled, err := service.CancelOD(ctx, "emp-1", "od-1")

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(cancelled.Status).To(gomega.Equal(api.LeaveStatusCancelled))
			})
		})

		ginkgo.Context("when it is already cancelled", func() {
			ginkgo.It("should report the conflict", func() {
				mockRepo.ods["od-1"].Status = leavemodel.StatusCancelled

				_, err := service.CancelOD(ctx, "emp-1", "od-1")

				gomega.Expect(err).To(gomega.Equal(internal.ErrAlreadyCancelled))
			})
		})

		ginkgo.Context("when it has already been decided", func() {
			ginkgo.It("should refuse the cancel", func() {
				mockRepo.ods["od-1"].Status = leavemodel.StatusApproved

				_, err := service.CancelOD(ctx, "emp-1", "od-1")

				gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidLeaveStatus))
			})
		})

		ginkgo.Context("when another employee owns the request", func() {
			ginkgo.It("should behave as if the request does not exist", func() {
				_, err := service.CancelOD(ctx, "emp-2", "od-1")

				gomega.Expect(err).To(gomega.Equal(internal.ErrODNotFound))
			})
		})
	})

	ginkgo.Describe("UpdateODOutcome", func() {
		ginkgo.BeforeEach(func() {
			mockRepo.ods["od-1"] = &leavemodel.ODRequest{
				ID:         "od-1",
				EmployeeID: "emp-1",
				Status:     leavemodel.StatusApproved,
			}
		})

		ginkgo.It("should record the outcome", func() {
			updated, err := service.UpdateODOutcome(ctx, "emp-1", "od-1", "client signed the contract")

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Outcome).To(gomega.Equal("client signed the contract"))
		})

		ginkgo.It("should require a non-empty outcome", func() {
			_, err := service.UpdateODOutcome(ctx, "emp-1", "od-1", "")

			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should refuse outcomes on cancelled requests", func() {
			mockRepo.ods["od-1"].Status = leavemodel.StatusCancelled

			_, err := service.UpdateODOutcome(ctx, "emp-1", "od-1", "moot")

			gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidLeaveStatus))
		})
	})

	ginkgo.Describe("ValidateCCLDate", func() {
		ginkgo.BeforeEach(func() {
			holiday := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
			mockRepo.holidays["2026-08-17"] = &leavemodel.Holiday{
				ID:   "hol-1",
				Name: "Independence Day",
				Date: holiday,
			}
		})

		ginkgo.Context("when the date is a company holiday", func() {
			ginkgo.It("should report it as claimable", func() {
				verdict, err := service.ValidateCCLDate(ctx, "2026-08-17")

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(verdict.Valid).To(gomega.BeTrue())
				gomega.Expect(verdict.Holiday).To(gomega.Equal("Independence Day"))
			})
		})

		ginkgo.Context("when the date is a regular working day", func() {
			ginkgo.It("should report it as not claimable without erroring", func() {
				verdict, err := service.ValidateCCLDate(ctx, "2026-08-18")

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(verdict.Valid).To(gomega.BeFalse())
			})
		})

		ginkgo.Context("when the date is malformed", func() {
			ginkgo.It("should fail validation", func() {
				_, err := service.ValidateCCLDate(ctx, "17/08/2026")

				gomega.Expect(err).To(gomega.HaveOccurred())
			})
		})
	})

	ginkgo.Describe("ApplyCCL", func() {
		ginkgo.BeforeEach(func() {
			holiday := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
			mockRepo.holidays["2026-08-17"] = &leavemodel.Holiday{
				ID:   "hol-1",
				Name: "Independence Day",
				Date: holiday,
			}
		})

		ginkgo.Context("when the worked date was a holiday", func() {
			ginkgo.It("should create a pending claim", func() {
				created, err := service.ApplyCCL(ctx, "emp-1", api.ApplyCCLRequest{
					WorkedDate: "2026-08-17",
					AssignedBy: "mgr-1",
					Purpose:    "release support",
				})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(created.Status).To(gomega.Equal(api.LeaveStatusPending))
				gomega.Expect(mockRepo.ccls).To(gomega.HaveLen(1))
			})
		})

		ginkgo.Context("when the worked date was not a holiday", func() {
			ginkgo.It("should refuse the claim", func() {
				_, err := service.ApplyCCL(ctx, "emp-1", api.ApplyCCLRequest{
					WorkedDate: "2026-08-18",
					AssignedBy: "mgr-1",
				})

				gomega.Expect(err).To(gomega.Equal(internal.ErrNotAHoliday))
				gomega.Expect(mockRepo.ccls).To(gomega.BeEmpty())
			})
		})

		ginkgo.Context("when assignedBy is missing", func() {
			ginkgo.It("should fail validation", func() {
				_, err := service.ApplyCCL(ctx, "emp-1", api.ApplyCCLRequest{WorkedDate: "2026-08-17"})

				gomega.Expect(err).To(gomega.HaveOccurred())
			})
		})
	})
})
