package department

import (
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
)

type Department struct {
	ID        int64
	Name      string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DepartmentResponse represents the response structure for a department.
type DepartmentResponse struct {
	ID        int64  `json:"department_id"`
	Name      string `json:"department_name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// DepartmentPayload is the create/update request body. Uniqueness is
// checked by the service against non-deleted rows.
type DepartmentPayload struct {
	Name *string `json:"department_name"`
}

func (p *DepartmentPayload) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if p.Name == nil || validator.IsEmpty(*p.Name) {
		errs = errs.Add("department_name", "Department name is required.")
	}

	return errs
}
