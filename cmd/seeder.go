package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	attendancemodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/attendance"
	employeemodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/employee"
	leavemodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/leave"
	usermodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/user"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the stub database with sample data",
	Long:  `Seed the stub database with sample users, employees, attendance, holidays and leave settings for development.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, _, err := initStubDB(cfg.Stub)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			for _, model := range []interface{}{
				&leavemodel.Request{}, &leavemodel.ODRequest{}, &leavemodel.CCLRequest{},
				&leavemodel.Holiday{}, &leavemodel.Settings{},
				&attendancemodel.Record{}, &employeemodel.Employee{}, &usermodel.User{},
			} {
				if err := db.Where("1 = 1").Delete(model).Error; err != nil {
					log.Fatalf("failed to clear data: %v", err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

		seedUser(db, &usermodel.User{
			ID:           uuid.NewString(),
			Email:        "asha@mail.com",
			Name:         "Asha Rahmawati",
			PasswordHash: string(hash),
			Role:         "employee",
			EmpNo:        "EMP001",
			Department:   "Engineering",
			Division:     "Platform",
			IsActive:     true,
		})
		seedUser(db, &usermodel.User{
			ID:           uuid.NewString(),
			Email:        "bima@mail.com",
			Name:         "Bima Santoso",
			PasswordHash: string(hash),
			Role:         "manager",
			EmpNo:        "EMP002",
			Department:   "Engineering",
			Division:     "Platform",
			IsActive:     true,
		})

		joining := time.Date(2022, 3, 14, 0, 0, 0, 0, time.UTC)
		seedEmployee(db, &employeemodel.Employee{
			ID:               uuid.NewString(),
			EmpNo:            "EMP001",
			EmployeeName:     "Asha Rahmawati",
			JoiningDate:      &joining,
			Designation:      "Software Engineer",
			Department:       "Engineering",
			Division:         "Platform",
			ReportingManager: "Bima Santoso",
			ShiftName:        "General",
			ShiftStart:       "09:00",
			ShiftEnd:         "18:00",
			EmploymentStatus: "active",
			BloodGroup:       "O+",
			PersonalEmail:    "asha.personal@mail.com",
			Address:          "Jl. Kemang Raya 12, Jakarta",
		})

		punchIn := "09:02"
		punchOut := "18:11"
		today := time.Now().Truncate(24 * time.Hour)
		seedAttendance(db, &attendancemodel.Record{
			ID:             uuid.NewString(),
			EmployeeNumber: "EMP001",
			Date:           today,
			PunchIn:        &punchIn,
			PunchOut:       &punchOut,
			Status:         "present",
			LateMinutes:    2,
			WorkedHours:    8.15,
		})

		year := time.Now().Year()
		seedHoliday(db, &leavemodel.Holiday{
			ID:   uuid.NewString(),
			Name: "New Year",
			Date: time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		seedHoliday(db, &leavemodel.Holiday{
			ID:   uuid.NewString(),
			Name: "Independence Day",
			Date: time.Date(year, 8, 17, 0, 0, 0, 0, time.UTC),
		})

		seedSettings(db, &leavemodel.Settings{
			ID:                uuid.NewString(),
			RequestType:       "leave",
			MaxDaysPerRequest: 14,
			AllowHalfDay:      true,
			Reasons:           "vacation, sick, family, personal",
		})
		seedSettings(db, &leavemodel.Settings{
			ID:                uuid.NewString(),
			RequestType:       "od",
			MaxDaysPerRequest: 5,
			AllowHalfDay:      false,
			Reasons:           "client visit, training, conference",
		})

		fmt.Println("Seed complete; sample login: asha@mail.com / password")
	},
}

func seedUser(db *gorm.DB, u *usermodel.User) {
	var existing usermodel.User
	if err := db.Where("email = ?", u.Email).First(&existing).Error; err == nil {
		fmt.Printf("user %s already exists\n", u.Email)
		return
	}
	if err := db.Create(u).Error; err != nil {
		log.Fatalf("failed to seed user %s: %v", u.Email, err)
	}
	fmt.Printf("Seeded user: %s\n", u.Email)
}

func seedEmployee(db *gorm.DB, e *employeemodel.Employee) {
	var existing employeemodel.Employee
	if err := db.Where("emp_no = ?", e.EmpNo).First(&existing).Error; err == nil {
		fmt.Printf("employee %s already exists\n", e.EmpNo)
		return
	}
	if err := db.Create(e).Error; err != nil {
		log.Fatalf("failed to seed employee %s: %v", e.EmpNo, err)
	}
	fmt.Printf("Seeded employee: %s\n", e.EmpNo)
}

func seedAttendance(db *gorm.DB, rec *attendancemodel.Record) {
	var existing attendancemodel.Record
	if err := db.Where("employee_number = ? AND date = ?", rec.EmployeeNumber, rec.Date).First(&existing).Error; err == nil {
		return
	}
	if err := db.Create(rec).Error; err != nil {
		log.Fatalf("failed to seed attendance: %v", err)
	}
}

func seedHoliday(db *gorm.DB, h *leavemodel.Holiday) {
	var existing leavemodel.Holiday
	if err := db.Where("date = ?", h.Date).First(&existing).Error; err == nil {
		return
	}
	if err := db.Create(h).Error; err != nil {
		log.Fatalf("failed to seed holiday %s: %v", h.Name, err)
	}
}

func seedSettings(db *gorm.DB, s *leavemodel.Settings) {
	var existing leavemodel.Settings
	if err := db.Where("request_type = ?", s.RequestType).First(&existing).Error; err == nil {
		return
	}
	if err := db.Create(s).Error; err != nil {
		log.Fatalf("failed to seed settings %s: %v", s.RequestType, err)
	}
}
