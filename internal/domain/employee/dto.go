package employee

import (
	"encoding/json"
	"io"
	"time"
)

// Payload is the untyped employee create/update request body. Every field is
// a pointer (or raw JSON) so the validator can tell "absent" from "zero";
// validation produces a CleanedData holding only the fields that passed.
type Payload struct {
	FirstName            *string         `json:"first_name"`
	LastName             *string         `json:"last_name"`
	PhoneNumber          *string         `json:"phone_number"`
	PhoneCountryCodeID   *int64          `json:"phone_country_code"`
	EmiratesID           *string         `json:"emirates_id"`
	PassportNumber       *string         `json:"passport_number"`
	LabourCardNumber     *string         `json:"labour_card_number"`
	MOHREEstablishmentID *string         `json:"mohre_establishment_id"`
	VisaExpiry           *string         `json:"visa_expiry"`
	ContractTypeID       *int64          `json:"contract_type"`
	ContractStartDate    *string         `json:"contract_start_date"`
	ContractEndDate      *string         `json:"contract_end_date"`
	DepartmentID         *int64          `json:"department"`
	LocationID           *int64          `json:"location"`
	BankID               *int64          `json:"bank"`
	JobTitleID           *int64          `json:"job_title"`
	IBAN                 *string         `json:"iban"`
	CustomFields         json.RawMessage `json:"custom_fields"`
}

// CleanedData carries the validated, typed values. A nil field means the
// caller either omitted it or it failed validation; updates must leave the
// stored value untouched in both cases.
type CleanedData struct {
	FirstName            *string
	LastName             *string
	PhoneNumber          *string
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
	LocationID           *int64
	BankID               *int64
	JobTitleID           *int64
	IBAN                 *string
	CustomFields         map[string]any
}

// UploadedFile is one incoming multipart file for attachment creation.
type UploadedFile struct {
	Reader   io.Reader
	Filename string
}

// EmployeeResponse represents the serialized employee record.
type EmployeeResponse struct {
	ID                   int64          `json:"employee_id"`
	UserID               *int64         `json:"user,omitempty"`
	FirstName            string         `json:"first_name"`
	LastName             string         `json:"last_name"`
	PhoneNumber          string         `json:"phone_number"`
	PhoneCountryCodeID   *int64         `json:"phone_country_code,omitempty"`
	EmiratesID           *string        `json:"emirates_id,omitempty"`
	PassportNumber       *string        `json:"passport_number,omitempty"`
	LabourCardNumber     *string        `json:"labour_card_number,omitempty"`
	MOHREEstablishmentID *string        `json:"mohre_establishment_id,omitempty"`
	VisaExpiry           *string        `json:"visa_expiry,omitempty"`
	ContractTypeID       *int64         `json:"contract_type,omitempty"`
	ContractStartDate    *string        `json:"contract_start_date,omitempty"`
	ContractEndDate      *string        `json:"contract_end_date,omitempty"`
	DepartmentID         *int64         `json:"department,omitempty"`
	LocationID           *int64         `json:"location,omitempty"`
	BankID               *int64         `json:"bank,omitempty"`
	JobTitleID           *int64         `json:"job_title,omitempty"`
	IBAN                 string         `json:"iban"`
	CustomFields         map[string]any `json:"custom_fields,omitempty"`
	CreatedAt            string         `json:"created_at"`
	UpdatedAt            string         `json:"updated_at"`
}

// SavedAttachment echoes one stored file back in the create response.
type SavedAttachment struct {
	FileName    string `json:"file_name"`
	DocumentURL string `json:"document_url"`
}

// CreateEmployeeResponse carries the created record, its attachments, and the
// generated initial login secret. The secret is shown exactly once.
type CreateEmployeeResponse struct {
	Employee      EmployeeResponse  `json:"employee"`
	Attachments   []SavedAttachment `json:"attachments"`
	LoginName     string            `json:"login_name"`
	InitialSecret string            `json:"initial_secret"`
}

// VisaExpiryAlertResponse lists employees whose visa expires inside the
// 30-day alert window.
type VisaExpiryAlertResponse struct {
	Count     int                `json:"count"`
	Employees []EmployeeResponse `json:"employees_with_expiring_visa"`
}
