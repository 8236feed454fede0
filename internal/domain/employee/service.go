package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee validates the payload and, in one transaction, provisions
	// the login identity, inserts the employee, and stores any attachments.
	CreateEmployee(ctx context.Context, payload Payload, files []UploadedFile) (CreateEmployeeResponse, error)

	// GetEmployee retrieves a single non-deleted employee by id
	GetEmployee(ctx context.Context, id int64) (EmployeeResponse, error)

	// ListEmployees lists all non-deleted employees
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateEmployee re-runs full payload validation and merges the cleaned
	// fields onto the stored row
	UpdateEmployee(ctx context.Context, id int64, payload Payload) (EmployeeResponse, error)

	// DeleteEmployee soft deletes an employee
	DeleteEmployee(ctx context.Context, id int64) error

	// VisaExpiryAlert returns non-deleted employees whose visa expires within
	// the next 30 days (inclusive window), ascending by expiry date
	VisaExpiryAlert(ctx context.Context) (VisaExpiryAlertResponse, error)
}
