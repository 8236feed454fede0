package employee

import "time"

// Employee is the central aggregate. Reference ids stay in place even if the
// referenced row is later soft-deleted; only a hard delete of a reference row
// would null them out.
type Employee struct {
	ID                   int64
	UserID               *int64
	FirstName            string
	LastName             string
	PhoneNumber          string
	PhoneCountryCodeID   *int64
	EmiratesID           *string
	PassportNumber       *string
	LabourCardNumber     *string
	MOHREEstablishmentID *string
	VisaExpiry           *time.Time
	ContractTypeID       *int64
	ContractStartDate    *time.Time
	ContractEndDate      *time.Time
	DepartmentID         *int64
	DesignationID        *int64
	LocationID           *int64
	BankID               *int64
	JobTitleID           *int64
	IBAN                 string
	CustomFields         map[string]any
	Deleted              bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
