package user

import "time"

type User struct {
	ID           string    `gorm:"primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	Name         string    `gorm:"column:name;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;default:employee"`
	EmpNo        string    `gorm:"column:emp_no;index"`
	EmployeeRef  string    `gorm:"column:employee_ref"`
	Department   string    `gorm:"column:department"`
	Division     string    `gorm:"column:division"`
	IsActive     bool      `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
