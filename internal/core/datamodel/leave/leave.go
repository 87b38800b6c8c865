package leave

import "time"

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

type Request struct {
	ID           string    `gorm:"primaryKey"`
	EmployeeID   string    `gorm:"column:employee_id;index;not null"`
	LeaveType    string    `gorm:"column:leave_type;not null"`
	FromDate     time.Time `gorm:"column:from_date;type:date;not null"`
	ToDate       time.Time `gorm:"column:to_date;type:date;not null"`
	NumberOfDays float64   `gorm:"column:number_of_days;not null"`
	Purpose      string    `gorm:"column:purpose"`
	Status       string    `gorm:"column:status;default:pending;index"`
	Remarks      string    `gorm:"column:remarks"`
	ActionBy     string    `gorm:"column:action_by"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

type ODRequest struct {
	ID         string    `gorm:"primaryKey"`
	EmployeeID string    `gorm:"column:employee_id;index;not null"`
	FromDate   time.Time `gorm:"column:from_date;type:date;not null"`
	ToDate     time.Time `gorm:"column:to_date;type:date;not null"`
	Place      string    `gorm:"column:place"`
	Purpose    string    `gorm:"column:purpose"`
	Outcome    string    `gorm:"column:outcome"`
	Status     string    `gorm:"column:status;default:pending;index"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

type CCLRequest struct {
	ID         string    `gorm:"primaryKey"`
	EmployeeID string    `gorm:"column:employee_id;index;not null"`
	WorkedDate time.Time `gorm:"column:worked_date;type:date;not null"`
	AssignedBy string    `gorm:"column:assigned_by"`
	Purpose    string    `gorm:"column:purpose"`
	Status     string    `gorm:"column:status;default:pending;index"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

type Holiday struct {
	ID        string    `gorm:"primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Date      time.Time `gorm:"column:date;type:date;uniqueIndex;not null"`
	Optional  bool      `gorm:"column:optional;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

type Settings struct {
	ID                string    `gorm:"primaryKey"`
	RequestType       string    `gorm:"column:request_type;uniqueIndex;not null"`
	MaxDaysPerRequest float64   `gorm:"column:max_days_per_request;default:0"`
	AllowHalfDay      bool      `gorm:"column:allow_half_day;default:false"`
	Reasons           string    `gorm:"column:reasons"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
