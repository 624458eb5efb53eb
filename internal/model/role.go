package model

// Role codes as constants. A session carries exactly zero or one of these;
// RoleGuest means a signed-in account with no staff/student profile yet
// ("profile setup incomplete") and is blocked from every role-gated route.
const (
	RoleAdmin        = "admin"
	RoleWarden       = "warden"
	RoleIncharge     = "incharge"
	RoleMessIncharge = "mess_incharge"
	RoleStudent      = "student"
	RoleGuest        = "guest"
)

// StaffRoles are the roles assignable to a staff profile. Students get
// RoleStudent implicitly and are never listed here.
var StaffRoles = []string{RoleAdmin, RoleWarden, RoleIncharge, RoleMessIncharge}

// IsStaffRole reports whether code is a valid staff profile role.
func IsStaffRole(code string) bool {
	for _, r := range StaffRoles {
		if r == code {
			return true
		}
	}
	return false
}

// IsAllowed reports whether role is a member of the route's allow-list.
// It is the single role check used both by the route middleware and by any
// handler that needs an inline conditional.
func IsAllowed(role string, allowed []string) bool {
	if role == "" || role == RoleGuest {
		return false
	}
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}

// AnyRole is the allow-list for routes open to every resolved role.
var AnyRole = []string{RoleAdmin, RoleWarden, RoleIncharge, RoleMessIncharge, RoleStudent}
