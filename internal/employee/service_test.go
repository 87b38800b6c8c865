package employee

import (
	"context"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/hrms-client/internal"
	employeemodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/employee"
	usermodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/user"
	"github.com/frahmantamala/hrms-client/internal/session"
)

func TestEmployee(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Employee Module Suite")
}

// Mock Repository for testing
type mockRepository struct {
	users     map[string]*usermodel.User
	employees map[string]*employeemodel.Employee
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users:     make(map[string]*usermodel.User),
		employees: make(map[string]*employeemodel.Employee),
	}
}

func (m *mockRepository) GetUserByID(_ context.Context, id string) (*usermodel.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, internal.ErrUserNotFound
}

func (m *mockRepository) UpdateUser(_ context.Context, u *usermodel.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *mockRepository) GetEmployeeByEmpNo(_ context.Context, empNo string) (*employeemodel.Employee, error) {
	if e, ok := m.employees[empNo]; ok {
		return e, nil
	}
	return nil, internal.ErrEmployeeNotFound
}

func (m *mockRepository) ListUsersByRoles(_ context.Context, roles []string) ([]usermodel.User, error) {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	var out []usermodel.User
	for _, u := range m.users {
		if allowed[u.Role] {
			out = append(out, *u)
		}
	}
	return out, nil
}

var _ = ginkgo.Describe("EmployeeService", func() {
	var (
		service  *Service
		mockRepo *mockRepository
		ctx      context.Context
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRepository()
		mockRepo.users["user-1"] = &usermodel.User{
			ID:         "user-1",
			Email:      "asha@example.com",
			Name:       "Asha",
			Role:       "employee",
			EmpNo:      "EMP001",
			Department: "Engineering",
			Division:   "Platform",
			IsActive:   true,
		}
		mockRepo.users["user-2"] = &usermodel.User{
			ID:       "user-2",
			Email:    "bima@example.com",
			Name:     "Bima",
			Role:     "manager",
			EmpNo:    "EMP002",
			IsActive: true,
		}

		joining := time.Date(2022, 3, 14, 0, 0, 0, 0, time.UTC)
		mockRepo.employees["EMP001"] = &employeemodel.Employee{
			ID:               "emp-1",
			EmpNo:            "EMP001",
			EmployeeName:     "Asha",
			JoiningDate:      &joining,
			Designation:      "Software Engineer",
			Department:       "Engineering",
			ReportingManager: "Bima",
			ShiftName:        "General",
			ShiftStart:       "09:00",
			ShiftEnd:         "18:00",
			EmploymentStatus: "active",
		}

		service = NewService(mockRepo)
		ctx = context.Background()
	})

	ginkgo.Describe("GetEmployee", func() {
		ginkgo.Context("when the employee exists", func() {
			ginkgo.It("should return the enrichment profile on the wire shape", func() {
				// When
				emp, err := service.GetEmployee(ctx, "EMP001")

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(emp.EmployeeName).To(gomega.Equal("Asha"))
				gomega.Expect(emp.JoiningDate).To(gomega.Equal("2022-03-14"))
				gomega.Expect(emp.Designation.Name).To(gomega.Equal("Software Engineer"))
				gomega.Expect(emp.ReportingManager.EmployeeName).To(gomega.Equal("Bima"))
				gomega.Expect(emp.Shift.StartTime).To(gomega.Equal("09:00"))
			})

			ginkgo.It("should leave absent nested refs nil", func() {
				mockRepo.employees["EMP001"].Division = ""
				mockRepo.employees["EMP001"].ReportingManager = ""

				emp, err := service.GetEmployee(ctx, "EMP001")

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(emp.Division).To(gomega.BeNil())
				gomega.Expect(emp.ReportingManager).To(gomega.BeNil())
			})
		})

		ginkgo.Context("when the employee does not exist", func() {
			ginkgo.It("should return not found", func() {
				_, err := service.GetEmployee(ctx, "EMP404")

				gomega.Expect(err).To(gomega.Equal(internal.ErrEmployeeNotFound))
			})
		})
	})

	ginkgo.Describe("UpdateProfile", func() {
		ginkgo.Context("when patching a single field", func() {
			ginkgo.It("should change only that field", func() {
				// Given
				newName := "Asha R."
				patch := session.UserPatch{Name: &newName}

				// When
				updated, err := service.UpdateProfile(ctx, "user-1", patch)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(updated.Name).To(gomega.Equal("Asha R."))
				gomega.Expect(updated.Email).To(gomega.Equal("asha@example.com"))
				gomega.Expect(updated.Department.Name).To(gomega.Equal("Engineering"))
			})
		})

		ginkgo.Context("when patching org units", func() {
			ginkgo.It("should store the unit name", func() {
				patch := session.UserPatch{Department: &session.OrgUnit{Name: "Product"}}

				updated, err := service.UpdateProfile(ctx, "user-1", patch)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(updated.Department.Name).To(gomega.Equal("Product"))
				gomega.Expect(mockRepo.users["user-1"].Department).To(gomega.Equal("Product"))
			})
		})

		ginkgo.Context("when the user does not exist", func() {
			ginkgo.It("should return not found", func() {
				name := "Nobody"
				_, err := service.UpdateProfile(ctx, "user-404", session.UserPatch{Name: &name})

				gomega.Expect(err).To(gomega.Equal(internal.ErrUserNotFound))
			})
		})

		ginkgo.Context("when the patch is empty", func() {
			ginkgo.It("should keep all stored values", func() {
				updated, err := service.UpdateProfile(ctx, "user-1", session.UserPatch{})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(updated.Name).To(gomega.Equal("Asha"))
				gomega.Expect(updated.Email).To(gomega.Equal("asha@example.com"))
			})
		})
	})

	ginkgo.Describe("ListVerifiers", func() {
		ginkgo.It("should only return users with verifier roles", func() {
			verifiers, err := service.ListVerifiers(ctx)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(verifiers).To(gomega.HaveLen(1))
			gomega.Expect(verifiers[0].Role).To(gomega.Equal("manager"))
		})
	})

	ginkgo.Describe("WireUser", func() {
		ginkgo.It("should map org units only when present", func() {
			user := WireUser(mockRepo.users["user-2"])

			gomega.Expect(user.Department).To(gomega.BeNil())
			gomega.Expect(user.Division).To(gomega.BeNil())
			gomega.Expect(user.EmpNo).To(gomega.Equal("EMP002"))
		})
	})
})
