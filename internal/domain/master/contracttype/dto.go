package contracttype

import (
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
)

type ContractType struct {
	ID        int64
	Name      string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContractTypeResponse represents the response structure for a contract type.
type ContractTypeResponse struct {
	ID        int64  `json:"contract_type_id"`
	Name      string `json:"contract_type_name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ContractTypePayload is the create/update request body. Uniqueness is
// checked by the service against non-deleted rows.
type ContractTypePayload struct {
	Name *string `json:"contract_type_name"`
}

func (p *ContractTypePayload) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if p.Name == nil || validator.IsEmpty(*p.Name) {
		errs = errs.Add("contract_type_name", "Contract type name is required.")
	}

	return errs
}
