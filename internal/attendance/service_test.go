package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/hrms-client/internal"
	attendancemodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/attendance"
)

func TestAttendance(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Attendance Module Suite")
}

// Mock Repository for testing
type mockRepository struct {
	records []attendancemodel.Record

	lastLimit  int
	lastOffset int
}

func (m *mockRepository) GetByEmployeeAndDate(_ context.Context, employeeNumber string, date time.Time) (*attendancemodel.Record, error) {
	for i := range m.records {
		if m.records[i].EmployeeNumber == employeeNumber && m.records[i].Date.Equal(date) {
			return &m.records[i], nil
		}
	}
	return nil, internal.ErrAttendanceNotFound
}

func (m *mockRepository) ListByRange(_ context.Context, employeeNumber string, from, to time.Time, limit, offset int) ([]attendancemodel.Record, int64, error) {
	m.lastLimit = limit
	m.lastOffset = offset

	var matched []attendancemodel.Record
	for _, rec := range m.records {
		if rec.EmployeeNumber != employeeNumber {
			continue
		}
		if rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		matched = append(matched, rec)
	}

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

var _ = ginkgo.Describe("AttendanceService", func() {
	var (
		service  *Service
		mockRepo *mockRepository
		ctx      context.Context
	)

	day := func(d int) time.Time {
		return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
	}

	ginkgo.BeforeEach(func() {
		punchIn := "09:02"
		punchOut := "18:11"
		mockRepo = &mockRepository{
			records: []attendancemodel.Record{
				{
					ID:             "rec-1",
					EmployeeNumber: "EMP001",
					Date:           day(1),
					PunchIn:        &punchIn,
					PunchOut:       &punchOut,
					Status:         "present",
					LateMinutes:    2,
					WorkedHours:    8.15,
				},
				{
					ID:             "rec-2",
					EmployeeNumber: "EMP001",
					Date:           day(2),
					Status:         "absent",
				},
			},
		}
		service = NewService(mockRepo)
		ctx = context.Background()
	})

	ginkgo.Describe("GetDetail", func() {
		ginkgo.Context("when a record exists for the date", func() {
			ginkgo.It("should return the punch record on the wire shape", func() {
				// When
				record, err := service.GetDetail(ctx, "EMP001", "2026-09-01")

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(record.PunchIn).To(gomega.Equal("09:02"))
				gomega.Expect(record.PunchOut).To(gomega.Equal("18:11"))
				gomega.Expect(record.Date).To(gomega.Equal("2026-09-01"))
			})
		})

		ginkgo.Context("when no record exists", func() {
			ginkgo.It("should return not found", func() {
				_, err := service.GetDetail(ctx, "EMP001", "2026-09-15")

				gomega.Expect(err).To(gomega.Equal(internal.ErrAttendanceNotFound))
			})
		})

		ginkgo.Context("when the date is malformed", func() {
			ginkgo.It("should fail validation without hitting the repository", func() {
				_, err := service.GetDetail(ctx, "EMP001", "01-09-2026")

				gomega.Expect(err).To(gomega.HaveOccurred())
				appErr, ok := internal.IsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeValidation))
			})
		})
	})

	ginkgo.Describe("List", func() {
		ginkgo.Context("when the range is valid", func() {
			ginkgo.It("should return the records with paging metadata", func() {
				// When
				list, err := service.List(ctx, "EMP001", "2026-09-01", "2026-09-30", 1, 10)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(list.Records).To(gomega.HaveLen(2))
				gomega.Expect(list.Total).To(gomega.Equal(int64(2)))
				gomega.Expect(list.Page).To(gomega.Equal(1))
				gomega.Expect(list.Limit).To(gomega.Equal(10))
			})
		})

		ginkgo.Context("when paging parameters are out of range", func() {
			ginkgo.It("should default page and limit", func() {
				list, err := service.List(ctx, "EMP001", "2026-09-01", "2026-09-30", 0, 0)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(list.Page).To(gomega.Equal(1))
				gomega.Expect(list.Limit).To(gomega.Equal(defaultPageLimit))
				gomega.Expect(mockRepo.lastOffset).To(gomega.Equal(0))
			})

			ginkgo.It("should clamp oversized limits", func() {
				list, err := service.List(ctx, "EMP001", "2026-09-01", "2026-09-30", 1, 5000)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(list.Limit).To(gomega.Equal(maxPageLimit))
			})

			ginkgo.It("should translate page and limit into an offset", func() {
				_, err := service.List(ctx, "EMP001", "2026-09-01", "2026-09-30", 3, 10)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(mockRepo.lastOffset).To(gomega.Equal(20))
				gomega.Expect(mockRepo.lastLimit).To(gomega.Equal(10))
			})
		})

		ginkgo.Context("when the range is reversed", func() {
			ginkgo.It("should fail validation", func() {
				_, err := service.List(ctx, "EMP001", "2026-09-30", "2026-09-01", 1, 10)

				gomega.Expect(err).To(gomega.HaveOccurred())
			})
		})
	})
})
