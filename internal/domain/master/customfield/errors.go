package customfield

import "errors"

var (
	ErrCustomFieldNotFound = errors.New("custom field not found")
)
