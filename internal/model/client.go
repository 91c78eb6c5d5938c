package model

// ClientCategory classifies how the client relates to the branch.
type ClientCategory string

const (
	ClientRegular  ClientCategory = "regular"
	ClientVIP      ClientCategory = "vip"
	ClientCompany  ClientCategory = "company"
	ClientShowroom ClientCategory = "showroom"
)

// DraftClient holds the identity and contact fields collected on the first
// wizard step. Name components carry Arabic script only; the phone is stored
// normalized (10 digits, "05" prefix).
type DraftClient struct {
	FirstName   string         `json:"first_name"`
	SecondName  string         `json:"second_name"`
	ThirdName   string         `json:"third_name"`
	LastName    string         `json:"last_name"`
	Phone       string         `json:"phone"`
	SecondPhone string         `json:"second_phone,omitempty"`
	Email       string         `json:"email,omitempty"`
	Category    ClientCategory `json:"category"`
	Branch      string         `json:"branch"`
}

// FullName joins the non-empty name components with single spaces.
func (c DraftClient) FullName() string {
	name := ""
	for _, part := range []string{c.FirstName, c.SecondName, c.ThirdName, c.LastName} {
		if part == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += part
	}
	return name
}

// ClientRecord is a persisted client row as served on the listing feed.
type ClientRecord struct {
	ID          string         `json:"id"`
	FullName    string         `json:"full_name"`
	Phone       string         `json:"phone"`
	SecondPhone *string        `json:"second_phone,omitempty"`
	Email       *string        `json:"email,omitempty"`
	Category    ClientCategory `json:"category"`
	Branch      string         `json:"branch"`
}

// ExistsResult is the outcome of the client existence lookup. Message carries
// the server-authored collision sentence shown to the operator.
type ExistsResult struct {
	Exists  bool   `json:"exists"`
	Message string `json:"message,omitempty"`
}
