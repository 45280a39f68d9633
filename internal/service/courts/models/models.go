package models

import (
	"time"

	"github.com/courtline/CourtBookingService/internal/domain"
)

// Request models

// CreateCourtRequest describes a new court.
type CreateCourtRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	HourlyRate  float64 `json:"hourlyRate"`
}

// UpdateCourtRequest edits a court. Nil fields keep the stored value.
type UpdateCourtRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	HourlyRate  *float64 `json:"hourlyRate,omitempty"`
}

// Response models

// CourtResponse is the court DTO.
type CourtResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	HourlyRate  float64   `json:"hourlyRate"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CourtListResponse is the courts listing DTO.
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// FromDomainCourt converts the domain model into a DTO.
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}
	return &CourtResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		HourlyRate:  c.HourlyRate,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromDomainCourtList converts a slice of domain models into a DTO.
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	resp := &CourtListResponse{
		Courts: make([]CourtResponse, 0, len(courts)),
	}
	for _, court := range courts {
		if courtResp := FromDomainCourt(court); courtResp != nil {
			resp.Courts = append(resp.Courts, *courtResp)
		}
	}
	return resp
}
