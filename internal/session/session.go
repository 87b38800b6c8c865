// Package session holds the client-side record of who is logged in: the
// identity returned by login, the lazily fetched employee profile, and the
// bearer token presented on every authenticated request.
package session

// OrgUnit is a department or division summary embedded in the identity record.
type OrgUnit struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}

// User is the minimal identity obtained at login.
type User struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	EmpNo       string   `json:"emp_no,omitempty"`
	EmployeeRef string   `json:"employeeId,omitempty"`
	Department  *OrgUnit `json:"department,omitempty"`
	Division    *OrgUnit `json:"division,omitempty"`
	IsActive    bool     `json:"isActive,omitempty"`
}

// UserPatch is a partial identity update. Nil fields keep their current value;
// set fields overwrite.
type UserPatch struct {
	Name        *string  `json:"name,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Role        *string  `json:"role,omitempty"`
	EmpNo       *string  `json:"emp_no,omitempty"`
	EmployeeRef *string  `json:"employeeId,omitempty"`
	Department  *OrgUnit `json:"department,omitempty"`
	Division    *OrgUnit `json:"division,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// Apply merges the patch into u.
func (u *User) Apply(p UserPatch) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.EmpNo != nil {
		u.EmpNo = *p.EmpNo
	}
	if p.EmployeeRef != nil {
		u.EmployeeRef = *p.EmployeeRef
	}
	if p.Department != nil {
		u.Department = p.Department
	}
	if p.Division != nil {
		u.Division = p.Division
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
}

// NameRef wraps lookup values the backend returns as embedded documents.
type NameRef struct {
	Name string `json:"name"`
}

// ManagerRef is the reporting manager summary on an employee record.
type ManagerRef struct {
	EmployeeName string `json:"employee_name"`
}

// Shift is the work-shift summary on an employee record.
type Shift struct {
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Employee is the richer profile fetched after login (enrichment). It can be
// absent even while authenticated.
type Employee struct {
	ID               string      `json:"_id"`
	EmpNo            string      `json:"emp_no"`
	EmployeeName     string      `json:"employee_name"`
	JoiningDate      string      `json:"joining_date,omitempty"`
	Designation      *NameRef    `json:"designation,omitempty"`
	Department       *NameRef    `json:"department,omitempty"`
	Division         *NameRef    `json:"division,omitempty"`
	ReportingManager *ManagerRef `json:"reporting_manager,omitempty"`
	Shift            *Shift      `json:"shiftId,omitempty"`
	EmploymentStatus string      `json:"employment_status,omitempty"`
	BloodGroup       string      `json:"blood_group,omitempty"`
	PersonalEmail    string      `json:"personal_email,omitempty"`
	Address          string      `json:"address,omitempty"`
}

// State is the full persisted session record.
type State struct {
	User            *User     `json:"user"`
	Employee        *Employee `json:"employee"`
	Token           string    `json:"token"`
	IsAuthenticated bool      `json:"isAuthenticated"`
}

// clone deep-copies the state so callers cannot mutate the store through a
// returned snapshot.
func (s State) clone() State {
	out := State{Token: s.Token, IsAuthenticated: s.IsAuthenticated}
	if s.User != nil {
		u := *s.User
		if s.User.Department != nil {
			d := *s.User.Department
			u.Department = &d
		}
		if s.User.Division != nil {
			d := *s.User.Division
			u.Division = &d
		}
		out.User = &u
	}
	if s.Employee != nil {
		e := *s.Employee
		if s.Employee.Designation != nil {
			v := *s.Employee.Designation
			e.Designation = &v
		}
		if s.Employee.Department != nil {
			v := *s.Employee.Department
			e.Department = &v
		}
		if s.Employee.Division != nil {
			v := *s.Employee.Division
			e.Division = &v
		}
		if s.Employee.ReportingManager != nil {
			v := *s.Employee.ReportingManager
			e.ReportingManager = &v
		}
		if s.Employee.Shift != nil {
			v := *s.Employee.Shift
			e.Shift = &v
		}
		out.Employee = &e
	}
	return out
}
