package models

type User struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	RoomNo string `json:"room_no,omitempty"`
	Role   string `json:"role"`
}

type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleGuest      UserRole = "guest"
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "super_admin"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// UserGroups is the shape the backend returns from the user listing
// endpoint, already grouped by role.
type UserGroups struct {
	Students []User `json:"students"`
	Guests   []User `json:"guests"`
	Admins   []User `json:"admins"`
}

// Merge flattens the role groups into a single list, preserving each
// entry's original role field and the students/guests/admins order.
func (g UserGroups) Merge() []User {
	merged := make([]User, 0, len(g.Students)+len(g.Guests)+len(g.Admins))
	merged = append(merged, g.Students...)
	merged = append(merged, g.Guests...)
	merged = append(merged, g.Admins...)
	return merged
}

// MatchesFilter reports whether the user's role falls into the given
// filter bucket. The filter exposes all/student/guest/admin only;
// super_admin is folded into the admin bucket.
func (u User) MatchesFilter(filter string) bool {
	switch UserRole(filter) {
	case "", "all":
		return true
	case RoleAdmin:
		return UserRole(u.Role) == RoleAdmin || UserRole(u.Role) == RoleSuperAdmin
	default:
		return u.Role == filter
	}
}
