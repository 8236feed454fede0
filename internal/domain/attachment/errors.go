package attachment

import "errors"

var (
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrUploadFailed       = errors.New("file upload failed")
)
