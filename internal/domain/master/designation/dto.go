package designation

import (
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
)

type Designation struct {
	ID           int64
	Name         string
	Description  string
	DepartmentID *int64
	Deleted      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DesignationResponse represents the response structure for a designation.
type DesignationResponse struct {
	ID           int64  `json:"designation_id"`
	Name         string `json:"designation_name"`
	Description  string `json:"description"`
	DepartmentID *int64 `json:"department,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// DesignationPayload is the create/update request body. The department, when
// present, must reference an active Department; name uniqueness is checked by
// the service against non-deleted rows.
type DesignationPayload struct {
	Name         *string `json:"designation_name"`
	Description  *string `json:"description"`
	DepartmentID *int64  `json:"department"`
}

func (p *DesignationPayload) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if p.Name == nil || validator.IsEmpty(*p.Name) {
		errs = errs.Add("designation_name", "Designation name is required.")
	}

	return errs
}
