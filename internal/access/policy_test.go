package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("staff")
	assert.True(t, ok)
	assert.Equal(t, RoleStaff, role)

	_, ok = ParseRole("superuser")
	assert.False(t, ok)

	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		role   Role
		action Action
		want   bool
	}{
		{RoleAdministrator, ActionManageCourts, true},
		{RoleAdministrator, ActionViewPayroll, true},
		{RoleAdministrator, ActionManageEmployees, true},
		{RoleStaff, ActionRecordPayment, true},
		{RoleStaff, ActionManageCustomers, true},
		{RoleStaff, ActionManageCourts, false},
		{RoleStaff, ActionManageEmployees, false},
		{RoleStaff, ActionViewEmployees, false},
		{RoleStaff, ActionViewPayroll, false},
		{RoleStaff, ActionDeleteBooking, false},
		{RoleCustomer, ActionCreateBooking, true},
		{RoleCustomer, ActionViewCustomers, false},
		{RoleCustomer, ActionRecordPayment, false},
		{RoleCustomer, ActionUseTimeClock, false},
		{Role("unknown"), ActionViewBookings, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Allowed(tt.role, tt.action),
			"role=%s action=%s", tt.role, tt.action)
	}
}
