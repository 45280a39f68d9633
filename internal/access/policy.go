package access

// Role is one of the three fixed subject roles.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleStaff         Role = "staff"
	RoleCustomer      Role = "customer"
)

// ParseRole maps a claim/header value onto a known role.
// Unknown values come back as ok=false and must be rejected.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdministrator, RoleStaff, RoleCustomer:
		return Role(s), true
	default:
		return "", false
	}
}

// Action is a capability checked once per request.
type Action string

const (
	ActionViewBookings    Action = "bookings:view"
	ActionCreateBooking   Action = "bookings:create"
	ActionUpdateBooking   Action = "bookings:update"
	ActionCancelBooking   Action = "bookings:cancel"
	ActionDeleteBooking   Action = "bookings:delete"
	ActionManageCourts    Action = "courts:manage"
	ActionViewCourts      Action = "courts:view"
	ActionManageCustomers Action = "customers:manage"
	ActionViewCustomers   Action = "customers:view"
	ActionManageEmployees Action = "employees:manage"
	ActionViewEmployees   Action = "employees:view"
	ActionRecordPayment   Action = "payments:record"
	ActionUseTimeClock    Action = "timeclock:use"
	ActionViewPayroll     Action = "payroll:view"
	ActionManageSchedules Action = "schedules:manage"
	ActionViewReports     Action = "reports:view"
)

// policy is the whole permission model: one fixed table instead of
// conditional checks scattered through handlers. Ownership (a customer
// touching only their own bookings) is enforced in the services.
var policy = map[Role]map[Action]struct{}{
	RoleAdministrator: permissionSet(
		ActionViewBookings, ActionCreateBooking, ActionUpdateBooking,
		ActionCancelBooking, ActionDeleteBooking,
		ActionManageCourts, ActionViewCourts,
		ActionManageCustomers, ActionViewCustomers,
		ActionManageEmployees, ActionViewEmployees,
		ActionRecordPayment,
		ActionUseTimeClock, ActionViewPayroll, ActionManageSchedules,
		ActionViewReports,
	),
	RoleStaff: permissionSet(
		ActionViewBookings, ActionCreateBooking, ActionUpdateBooking,
		ActionCancelBooking,
		ActionViewCourts,
		ActionManageCustomers, ActionViewCustomers,
		ActionRecordPayment,
		ActionUseTimeClock,
		ActionViewReports,
	),
	RoleCustomer: permissionSet(
		ActionViewBookings, ActionCreateBooking, ActionUpdateBooking,
		ActionCancelBooking, ActionDeleteBooking,
		ActionViewCourts,
	),
}

func permissionSet(actions ...Action) map[Action]struct{} {
	set := make(map[Action]struct{}, len(actions))
	for _, a := range actions {
		set[a] = struct{}{}
	}
	return set
}

// Allowed reports whether the role may perform the action.
func Allowed(role Role, action Action) bool {
	actions, ok := policy[role]
	if !ok {
		return false
	}
	_, ok = actions[action]
	return ok
}
