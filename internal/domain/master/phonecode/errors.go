package phonecode

import "errors"

var (
	ErrCountryCodeNotFound = errors.New("country code not found")
)
