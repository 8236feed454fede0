package jobtitle

import (
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
)

type JobTitle struct {
	ID        int64
	Name      string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// JobTitleResponse represents the response structure for a job title.
type JobTitleResponse struct {
	ID        int64  `json:"job_title_id"`
	Name      string `json:"job_title_name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// JobTitlePayload is the create/update request body. Uniqueness is
// checked by the service against non-deleted rows.
type JobTitlePayload struct {
	Name *string `json:"job_title_name"`
}

func (p *JobTitlePayload) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if p.Name == nil || validator.IsEmpty(*p.Name) {
		errs = errs.Add("job_title_name", "Job title name is required.")
	}

	return errs
}
