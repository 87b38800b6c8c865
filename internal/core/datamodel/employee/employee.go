package employee

import "time"

type Employee struct {
	ID               string     `gorm:"primaryKey"`
	EmpNo            string     `gorm:"column:emp_no;uniqueIndex;not null"`
	EmployeeName     string     `gorm:"column:employee_name;not null"`
	JoiningDate      *time.Time `gorm:"column:joining_date;type:date"`
	Designation      string     `gorm:"column:designation"`
	Department       string     `gorm:"column:department"`
	Division         string     `gorm:"column:division"`
	ReportingManager string     `gorm:"column:reporting_manager"`
	ShiftName        string     `gorm:"column:shift_name"`
	ShiftStart       string     `gorm:"column:shift_start"`
	ShiftEnd         string     `gorm:"column:shift_end"`
	EmploymentStatus string     `gorm:"column:employment_status;default:active"`
	BloodGroup       string     `gorm:"column:blood_group"`
	PersonalEmail    string     `gorm:"column:personal_email"`
	Address          string     `gorm:"column:address"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
