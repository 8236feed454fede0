package bank

import (
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
)

type Bank struct {
	ID        int64
	Name      string
	SwiftCode *string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BankResponse represents the response structure for a bank.
type BankResponse struct {
	ID        int64   `json:"bank_id"`
	Name      string  `json:"bank_name"`
	SwiftCode *string `json:"swift_code,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// BankPayload is the create/update request body. Name and SWIFT uniqueness
// are checked by the service against non-deleted rows.
type BankPayload struct {
	Name      *string `json:"bank_name"`
	SwiftCode *string `json:"swift_code"`
}

func (p *BankPayload) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if p.Name == nil || validator.IsEmpty(*p.Name) {
		errs = errs.Add("bank_name", "Bank name is required.")
	}

	return errs
}
