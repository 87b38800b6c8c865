package attendance

import "time"

type Record struct {
	ID             string    `gorm:"primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number;index;not null"`
	Date           time.Time `gorm:"column:date;type:date;index;not null"`
	PunchIn        *string   `gorm:"column:punch_in"`
	PunchOut       *string   `gorm:"column:punch_out"`
	Status         string    `gorm:"column:status;default:present"`
	LateMinutes    int       `gorm:"column:late_minutes;default:0"`
	WorkedHours    float64   `gorm:"column:worked_hours;default:0"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
