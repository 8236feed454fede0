package fieldtype

import (
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
)

type FieldType struct {
	ID        int64
	Name      string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FieldTypeResponse represents the response structure for a field type.
type FieldTypeResponse struct {
	ID        int64  `json:"field_type_id"`
	Name      string `json:"field_type_name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// FieldTypePayload is the create/update request body. Uniqueness is
// checked by the service against non-deleted rows.
type FieldTypePayload struct {
	Name *string `json:"field_type_name"`
}

func (p *FieldTypePayload) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if p.Name == nil || validator.IsEmpty(*p.Name) {
		errs = errs.Add("field_type_name", "Field type name is required.")
	}

	return errs
}
