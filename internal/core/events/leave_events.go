package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeLeaveApplied   = "leave.applied"
	EventTypeLeaveActioned  = "leave.actioned"
	EventTypeODApplied      = "od.applied"
	EventTypeODCancelled    = "od.cancelled"
	EventTypeCCLApplied     = "ccl.applied"
	EventTypeUserLoggedIn   = "user.logged_in"
	EventTypeProfileUpdated = "user.profile_updated"
)

type LeaveAppliedEvent struct {
	BaseEvent
	LeaveID      string  `json:"leave_id"`
	EmployeeID   string  `json:"employee_id"`
	LeaveType    string  `json:"leave_type"`
	NumberOfDays float64 `json:"number_of_days"`
}

func NewLeaveAppliedEvent(leaveID, employeeID, leaveType string, numberOfDays float64) *LeaveAppliedEvent {
	return &LeaveAppliedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeLeaveApplied,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"leave_id":       leaveID,
				"employee_id":    employeeID,
				"leave_type":     leaveType,
				"number_of_days": numberOfDays,
			},
		},
		LeaveID:      leaveID,
		EmployeeID:   employeeID,
		LeaveType:    leaveType,
		NumberOfDays: numberOfDays,
	}
}

type LeaveActionedEvent struct {
	BaseEvent
	LeaveID    string `json:"leave_id"`
	EmployeeID string `json:"employee_id"`
	Action     string `json:"action"`
	ActionBy   string `json:"action_by"`
}

func NewLeaveActionedEvent(leaveID, employeeID, action, actionBy string) *LeaveActionedEvent {
	return &LeaveActionedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeLeaveActioned,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"leave_id":    leaveID,
				"employee_id": employeeID,
				"action":      action,
				"action_by":   actionBy,
			},
		},
		LeaveID:    leaveID,
		EmployeeID: employeeID,
		Action:     action,
		ActionBy:   actionBy,
	}
}

type ODAppliedEvent struct {
	BaseEvent
	ODID       string `json:"od_id"`
	EmployeeID string `json:"employee_id"`
	Purpose    string `json:"purpose"`
}

func NewODAppliedEvent(odID, employeeID, purpose string) *ODAppliedEvent {
	return &ODAppliedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeODApplied,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"od_id":       odID,
				"employee_id": employeeID,
				"purpose":     purpose,
			},
		},
		ODID:       odID,
		EmployeeID: employeeID,
		Purpose:    purpose,
	}
}

type ODCancelledEvent struct {
	BaseEvent
	ODID       string `json:"od_id"`
	EmployeeID string `json:"employee_id"`
}

func NewODCancelledEvent(odID, employeeID string) *ODCancelledEvent {
	return &ODCancelledEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeODCancelled,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"od_id":       odID,
				"employee_id": employeeID,
			},
		},
		ODID:       odID,
		EmployeeID: employeeID,
	}
}

type CCLAppliedEvent struct {
	BaseEvent
	CCLID      string `json:"ccl_id"`
	EmployeeID string `json:"employee_id"`
	WorkedDate string `json:"worked_date"`
}

func NewCCLAppliedEvent(cclID, employeeID, workedDate string) *CCLAppliedEvent {
	return &CCLAppliedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeCCLApplied,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"ccl_id":      cclID,
				"employee_id": employeeID,
				"worked_date": workedDate,
			},
		},
		CCLID:      cclID,
		EmployeeID: employeeID,
		WorkedDate: workedDate,
	}
}
