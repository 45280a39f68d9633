package models

import (
	"time"

	"github.com/courtline/CourtBookingService/internal/domain"
)

// Request models

// CreateCustomerRequest registers a new customer profile.
type CreateCustomerRequest struct {
	UserID  *int64  `json:"userId,omitempty"` // Auth subject to link, if any
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	Phone   string  `json:"phone"`
	Address *string `json:"address,omitempty"`
}

// Response models

// CustomerResponse is the customer DTO.
type CustomerResponse struct {
	ID             int64     `json:"id"`
	UserID         *int64    `json:"userId,omitempty"`
	Name           string    `json:"name"`
	Email          *string   `json:"email,omitempty"`
	Phone          string    `json:"phone"`
	Address        *string   `json:"address,omitempty"`
	MembershipDate time.Time `json:"membershipDate"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CustomerListResponse is the customers listing DTO.
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// FromDomainCustomer converts the domain model into a DTO.
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:             c.ID,
		UserID:         c.UserID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		MembershipDate: c.MembershipDate,
		Active:         c.Active,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// FromDomainCustomerList converts a slice of domain models into a DTO.
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{
		Customers: make([]CustomerResponse, 0, len(customers)),
	}
	for _, customer := range customers {
		if customerResp := FromDomainCustomer(customer); customerResp != nil {
			resp.Customers = append(resp.Customers, *customerResp)
		}
	}
	return resp
}
