package request

import (
	"strings"

	"user-admin/pkg/utils"
)

// UserRequest carries the mutable fields for create and update. The
// remote API assigns id and timestamps; active changes only go through
// the dedicated status endpoint.
type UserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty" validate:"omitempty,max=200"`
	Role        string `json:"role,omitempty"`
}

// Normalize trims free-text fields and scrubs the phone number down to
// at most 10 digits, the same way the entry form restricts input.
func (r *UserRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Address = strings.TrimSpace(r.Address)
	r.Role = strings.TrimSpace(r.Role)

	var digits strings.Builder
	for _, c := range r.PhoneNumber {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
		}
	}
	phone := digits.String()
	if len(phone) > 10 {
		phone = phone[:10]
	}
	r.PhoneNumber = phone
}

// Violations validates the request and returns human-readable messages,
// empty when the request may be submitted. Advisory only: fetched data
// is never validated.
func (r UserRequest) Violations() []string {
	c := r
	c.Normalize()

	errs := utils.ValidateStruct(c)
	if len(errs) == 0 {
		return nil
	}

	// One message per field, fixed order
	var violations []string
	if _, ok := errs["Email"]; ok {
		violations = append(violations, "Email must be in valid format")
	}
	if _, ok := errs["FirstName"]; ok {
		violations = append(violations, "First name is required")
	}
	if _, ok := errs["LastName"]; ok {
		violations = append(violations, "Last name is required")
	}
	if _, ok := errs["Address"]; ok {
		violations = append(violations, "Address must be less than 200 characters")
	}

	return violations
}
