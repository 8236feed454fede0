package attachment

// AttachmentResponse represents the serialized attachment row.
type AttachmentResponse struct {
	ID               int64  `json:"id"`
	DocumentURL      string `json:"document"`
	EmployeeID       *int64 `json:"employee,omitempty"`
	UploadedAt       string `json:"uploaded_at"`
	OriginalFilename string `json:"original_filename"`
}

// UploadResult echoes one stored file from a batch upload.
type UploadResult struct {
	OriginalFilename string `json:"original_filename"`
	EmployeeID       int64  `json:"employee_id"`
	DocumentURL      string `json:"document_url"`
	UploadedAt       string `json:"uploaded_at"`
}

// ListAttachmentsResponse carries all attachments for one employee.
type ListAttachmentsResponse struct {
	Count   int                  `json:"count"`
	Results []AttachmentResponse `json:"results"`
}
