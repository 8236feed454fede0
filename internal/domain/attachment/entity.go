package attachment

import "time"

// Attachment is a stored document reference. Attachments carry no soft-delete
// flag; deletion is physical.
type Attachment struct {
	ID               int64
	DocumentURL      string
	EmployeeID       *int64
	UploadedAt       time.Time
	OriginalFilename string
}
