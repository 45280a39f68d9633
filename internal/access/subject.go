package access

// Subject is the authenticated caller: auth user id plus role.
// Handlers build it from the request identity and pass it down; the
// policy check runs once per request in middleware, ownership checks
// run in the services.
type Subject struct {
	UserID int64
	Role   Role
}

// IsCustomer reports whether the subject carries the customer role.
func (s Subject) IsCustomer() bool {
	return s.Role == RoleCustomer
}

// IsStaff reports whether the subject is staff or an administrator.
func (s Subject) IsStaff() bool {
	return s.Role == RoleStaff || s.Role == RoleAdministrator
}
