package role

// Role is the access level attached to a user and carried in JWT claims.
type Role string

const (
	Admin    Role = "ADMIN"
	Staff    Role = "STAFF"
	Customer Role = "CUSTOMER"
)

// Valid reports whether r is one of the known roles.
func Valid(r Role) bool {
	switch r {
	case Admin, Staff, Customer:
		return true
	}
	return false
}
