package fieldtype

import "errors"

var (
	ErrFieldTypeNotFound = errors.New("field type not found")
)
