package models

import (
	"errors"
	"time"

	"github.com/courtline/CourtBookingService/internal/domain"
)

// ErrInvalidPosition is returned when the position value is unknown.
var ErrInvalidPosition = errors.New("invalid employee position")

// Request models

// CreateEmployeeRequest registers a new staff member.
type CreateEmployeeRequest struct {
	Name       string     `json:"name"`
	Position   string     `json:"position"`
	Email      *string    `json:"email,omitempty"`
	Phone      string     `json:"phone"`
	Address    *string    `json:"address,omitempty"`
	HireDate   *time.Time `json:"hireDate,omitempty"` // Defaults to now
	HourlyRate float64    `json:"hourlyRate"`
}

// Response models

// EmployeeResponse is the employee DTO.
type EmployeeResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Position   string    `json:"position"`
	Email      *string   `json:"email,omitempty"`
	Phone      string    `json:"phone"`
	Address    *string   `json:"address,omitempty"`
	HireDate   time.Time `json:"hireDate"`
	HourlyRate float64   `json:"hourlyRate"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// EmployeeListResponse is the employees listing DTO.
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToDomainPosition validates and converts the position value.
func ToDomainPosition(s string) (domain.EmployeePosition, error) {
	switch position := domain.EmployeePosition(s); position {
	case domain.PositionManager, domain.PositionAttendant,
		domain.PositionCleaner, domain.PositionMaintenance:
		return position, nil
	default:
		return "", ErrInvalidPosition
	}
}

// FromDomainEmployee converts the domain model into a DTO.
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}
	return &EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Position:   string(e.Position),
		Email:      e.Email,
		Phone:      e.Phone,
		Address:    e.Address,
		HireDate:   e.HireDate,
		HourlyRate: e.HourlyRate,
		Active:     e.Active,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// FromDomainEmployeeList converts a slice of domain models into a DTO.
func FromDomainEmployeeList(employees []*domain.Employee) *EmployeeListResponse {
	resp := &EmployeeListResponse{
		Employees: make([]EmployeeResponse, 0, len(employees)),
	}
	for _, employee := range employees {
		if employeeResp := FromDomainEmployee(employee); employeeResp != nil {
			resp.Employees = append(resp.Employees, *employeeResp)
		}
	}
	return resp
}
