package attachment

import "context"

type AttachmentRepository interface {
	Create(ctx context.Context, a Attachment) (Attachment, error)
	GetByID(ctx context.Context, id int64) (Attachment, error)
	ListByEmployeeID(ctx context.Context, employeeID int64) ([]Attachment, error)
	// Delete removes the row permanently.
	Delete(ctx context.Context, id int64) error
}
