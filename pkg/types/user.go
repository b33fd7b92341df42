package types

// User roles.
const (
	RoleAdmin     = "admin"
	RoleLawyer    = "lawyer"
	RoleAssistant = "assistant"
)

// User statuses.
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

var validUserRoles = map[string]bool{
	RoleAdmin:     true,
	RoleLawyer:    true,
	RoleAssistant: true,
}

var validUserStatuses = map[string]bool{
	UserStatusActive:   true,
	UserStatusDisabled: true,
}

// ValidUserRole reports whether r is a recognized user role.
func ValidUserRole(r string) bool { return validUserRoles[r] }

// ValidUserStatus reports whether s is a recognized user status.
func ValidUserStatus(s string) bool { return validUserStatuses[s] }

// User represents a staff account in the firm. ID is assigned by the store
// at creation time from a persisted monotonic sequence.
type User struct {
	ID       string `json:"id"`       // Padded sequence id, e.g. "USR006".
	Username string `json:"username"` // Login name, unique by convention.
	Name     string `json:"name"`     // Display name.
	Email    string `json:"email"`
	Role     string `json:"role"`   // One of the Role constants.
	Status   string `json:"status"` // One of the UserStatus constants.
}

// UserDraft is the caller-supplied portion of a new user.
type UserDraft struct {
	Username string
	Name     string
	Email    string
	Role     string
	Status   string
}

// UserPatch is a partial update to an existing user. Nil fields are left
// unchanged.
type UserPatch struct {
	Username *string
	Name     *string
	Email    *string
	Role     *string
	Status   *string
}

// Apply overlays the non-nil patch fields onto u.
func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
}
