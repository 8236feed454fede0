package customfield

import (
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
)

// CustomFieldConfig declares one admin-defined employee form field. The
// field_key is the stable programmatic identifier; field_label is what forms
// display.
type CustomFieldConfig struct {
	ID          int64
	FieldKey    string
	FieldLabel  string
	FieldTypeID *int64
	IsSelected  bool
	IsRequired  bool
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CustomFieldWithType joins the optional FieldType name for listings.
type CustomFieldWithType struct {
	CustomFieldConfig
	FieldTypeName *string
}

// CustomFieldResponse represents the response structure for a custom field
// configuration.
type CustomFieldResponse struct {
	ID            int64   `json:"id"`
	FieldKey      string  `json:"field_key"`
	FieldLabel    string  `json:"field_label"`
	FieldTypeID   *int64  `json:"field_type,omitempty"`
	FieldTypeName *string `json:"field_type_name,omitempty"`
	IsSelected    bool    `json:"is_selected"`
	IsRequired    bool    `json:"is_required"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// CustomFieldPayload is the create/update request body. is_selected and
// is_required default to false when absent. field_key uniqueness and the
// field_type reference are checked by the service.
type CustomFieldPayload struct {
	FieldKey    *string `json:"field_key"`
	FieldLabel  *string `json:"field_label"`
	FieldTypeID *int64  `json:"field_type"`
	IsSelected  *bool   `json:"is_selected"`
	IsRequired  *bool   `json:"is_required"`
}

func (p *CustomFieldPayload) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if p.FieldKey == nil || validator.IsEmpty(*p.FieldKey) {
		errs = errs.Add("field_key", "Field key is required.")
	}
	if p.FieldLabel == nil || validator.IsEmpty(*p.FieldLabel) {
		errs = errs.Add("field_label", "Field label is required.")
	}

	return errs
}
