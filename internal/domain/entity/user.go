package entity

// RoleAdmin is the role name the host app assigns to administrators
const RoleAdmin = "Admin"

// Viewer is the identity a query or command runs on behalf of.
// It is supplied by the host application's session and never stored.
type Viewer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Snapshot copies the fields recorded on a booking
func (v *Viewer) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:    v.ID,
		Name:  v.Name,
		Email: v.Email,
	}
}

// IsAdmin checks the role and the designated administrative email.
// The email must match exactly; only ownership matching ignores case.
func (v *Viewer) IsAdmin(adminEmail string) bool {
	if v == nil {
		return false
	}
	if v.Role == RoleAdmin {
		return true
	}
	return adminEmail != "" && v.Email == adminEmail
}
