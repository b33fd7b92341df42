package types

// Principal is the authenticated identity returned by the external auth
// service. Only the id and email are consumed locally.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Profile is the locally-managed metadata associated with a principal,
// read from the external record store keyed by principal id.
type Profile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`   // One of the Role constants.
	Status    string `json:"status"` // One of the UserStatus constants.
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
