package bank

import "errors"

var (
	ErrBankNotFound = errors.New("bank not found")
)
