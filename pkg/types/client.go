package types

// Client represents one person or company the firm works for. ID and Code
// are assigned by the store at creation time, never by the caller.
type Client struct {
	ID          string `json:"id"`          // Padded sequence id, e.g. "CL007".
	Code        string `json:"client_code"` // Business code, e.g. "CLT-007".
	NationalID  string `json:"national_id"` // Government id number.
	Name        string `json:"name"`        // Display name (required).
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	CreatedDate string `json:"created_date"` // Registration date, YYYY-MM-DD.
}

// ClientDraft is the caller-supplied portion of a new client.
type ClientDraft struct {
	NationalID  string
	Name        string
	Phone       string
	Email       string
	Address     string
	CreatedDate string
}

// ClientPatch is a partial update to an existing client. Nil fields are
// left unchanged. ID, Code, and CreatedDate are not patchable.
type ClientPatch struct {
	NationalID *string
	Name       *string
	Phone      *string
	Email      *string
	Address    *string
}

// Apply overlays the non-nil patch fields onto c.
func (p ClientPatch) Apply(c *Client) {
	if p.NationalID != nil {
		c.NationalID = *p.NationalID
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
}
