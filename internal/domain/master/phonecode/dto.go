package phonecode

import (
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
)

type PhoneCountryCode struct {
	ID        int64
	Country   string
	Code      string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PhoneCountryCodeResponse represents the response structure for a country code.
type PhoneCountryCodeResponse struct {
	ID      int64  `json:"id"`
	Country string `json:"country"`
	Code    string `json:"code"`
}

// DropdownResponse is the trimmed shape used by form dropdowns.
type DropdownResponse struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// PhoneCountryCodePayload is the create/update request body. The dialing code
// must be unique among non-deleted rows; the country name carries no
// uniqueness constraint.
type PhoneCountryCodePayload struct {
	Country *string `json:"country"`
	Code    *string `json:"code"`
}

func (p *PhoneCountryCodePayload) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if p.Country == nil || validator.IsEmpty(*p.Country) {
		errs = errs.Add("country", "Country is required.")
	}
	if p.Code == nil || validator.IsEmpty(*p.Code) {
		errs = errs.Add("code", "Country code is required.")
	}

	return errs
}
