package models

import (
	"time"

	"github.com/courtline/CourtBookingService/internal/domain"
)

// Request models

// ClockRequest identifies the employee punching the clock.
type ClockRequest struct {
	EmployeeID int64   `json:"employeeId"`
	Notes      *string `json:"notes,omitempty"`
}

// PayrollRequest bounds the payroll report period.
type PayrollRequest struct {
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	EmployeeID *int64    `json:"employeeId,omitempty"` // One employee, or all active when nil
}

// CreateScheduleRequest plans a shift.
type CreateScheduleRequest struct {
	EmployeeID int64     `json:"employeeId"`
	Date       time.Time `json:"date"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Notes      *string   `json:"notes,omitempty"`
}

// Response models

// TimeEntryResponse is the time entry DTO.
type TimeEntryResponse struct {
	ID         int64      `json:"id"`
	EmployeeID int64      `json:"employeeId"`
	ClockIn    time.Time  `json:"clockIn"`
	ClockOut   *time.Time `json:"clockOut,omitempty"`
	Hours      float64    `json:"hours"`
	Notes      *string    `json:"notes,omitempty"`
}

// PayrollLine is one employee's totals for the period.
type PayrollLine struct {
	EmployeeID   int64   `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Position     string  `json:"position"`
	HourlyRate   float64 `json:"hourlyRate"`
	Hours        float64 `json:"hours"`
	Pay          float64 `json:"pay"`
	Entries      int     `json:"entries"`
}

// PayrollResponse is the payroll report DTO.
type PayrollResponse struct {
	From     time.Time     `json:"from"`
	To       time.Time     `json:"to"`
	Lines    []PayrollLine `json:"lines"`
	TotalPay float64       `json:"totalPay"`
}

// ScheduleResponse is the planned shift DTO.
type ScheduleResponse struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employeeId"`
	Date       string    `json:"date"` // "2006-01-02"
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Notes      *string   `json:"notes,omitempty"`
}

// ScheduleListResponse is the shift listing DTO.
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

// FromDomainTimeEntry converts the domain model into a DTO.
func FromDomainTimeEntry(e *domain.TimeEntry) *TimeEntryResponse {
	if e == nil {
		return nil
	}
	return &TimeEntryResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		ClockIn:    e.ClockIn,
		ClockOut:   e.ClockOut,
		Hours:      e.DurationHours(),
		Notes:      e.Notes,
	}
}

// FromDomainSchedule converts the domain model into a DTO.
func FromDomainSchedule(s *domain.WorkSchedule) *ScheduleResponse {
	if s == nil {
		return nil
	}
	return &ScheduleResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		Date:       s.Date.Format(domain.DateFormat),
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		Notes:      s.Notes,
	}
}

// FromDomainScheduleList converts a slice of domain models into a DTO.
func FromDomainScheduleList(schedules []*domain.WorkSchedule) *ScheduleListResponse {
	resp := &ScheduleListResponse{
		Schedules: make([]ScheduleResponse, 0, len(schedules)),
	}
	for _, s := range schedules {
		if sr := FromDomainSchedule(s); sr != nil {
			resp.Schedules = append(resp.Schedules, *sr)
		}
	}
	return resp
}
