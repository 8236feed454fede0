package location

import (
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
)

type Location struct {
	ID        int64
	Name      string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LocationResponse represents the response structure for a location.
type LocationResponse struct {
	ID        int64  `json:"location_id"`
	Name      string `json:"location_name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// LocationPayload is the create/update request body. Uniqueness is
// checked by the service against non-deleted rows.
type LocationPayload struct {
	Name *string `json:"location_name"`
}

func (p *LocationPayload) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if p.Name == nil || validator.IsEmpty(*p.Name) {
		errs = errs.Add("location_name", "Location name is required.")
	}

	return errs
}
