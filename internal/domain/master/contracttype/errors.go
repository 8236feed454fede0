package contracttype

import "errors"

var (
	ErrContractTypeNotFound = errors.New("contract type not found")
)
