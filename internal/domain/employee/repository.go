package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetActiveByID(ctx context.Context, id int64) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, e Employee) error
	SoftDelete(ctx context.Context, id int64) error

	// ListVisaExpiring returns non-deleted employees whose visa_expiry falls
	// inside [from, to], ascending by visa_expiry.
	ListVisaExpiring(ctx context.Context, from, to time.Time) ([]Employee, error)
}
