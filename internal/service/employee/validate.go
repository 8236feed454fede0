package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/domain/employee"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/iban"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
)

// payrollMandatoryFields must all be present before the employee can be
// included in a payroll run. Their absence is reported per field, not
// short-circuited.
var payrollMandatoryFields = []string{"emirates_id", "labour_card_number", "mohre_establishment_id"}

// validatePayload runs every check in one pass and collects all failures.
// The returned CleanedData carries only the fields that passed; updates merge
// it over the stored row so a failed optional field never erases a value.
func (s *employeeServiceImpl) validatePayload(ctx context.Context, payload employee.Payload) (employee.CleanedData, validator.ValidationErrors, error) {
	var (
		cleaned employee.CleanedData
		errs    validator.ValidationErrors
	)

	requiredText := []struct {
		field string
		value *string
		dst   **string
	}{
		{"first_name", payload.FirstName, &cleaned.FirstName},
		{"last_name", payload.LastName, &cleaned.LastName},
		{"phone_number", payload.PhoneNumber, &cleaned.PhoneNumber},
	}
	for _, f := range requiredText {
		if f.value == nil || validator.IsEmpty(*f.value) {
			errs = errs.Add(f.field, validator.FieldLabel(f.field)+" is required.")
		} else {
			*f.dst = f.value
		}
	}

	if payload.IBAN == nil || validator.IsEmpty(*payload.IBAN) {
		errs = errs.Add("iban", "IBAN is required.")
	} else if valid, reason := iban.ValidateUAE(*payload.IBAN); !valid {
		errs = errs.Add("iban", reason)
	} else {
		cleaned.IBAN = payload.IBAN
	}

	if payload.PhoneCountryCodeID != nil {
		exists, err := s.phoneCodeRepo.ExistsActiveByID(ctx, *payload.PhoneCountryCodeID)
		if err != nil {
			return employee.CleanedData{}, nil, fmt.Errorf("failed to check phone country code: %w", err)
		}
		if exists {
			cleaned.PhoneCountryCodeID = payload.PhoneCountryCodeID
		} else {
			errs = errs.Add("phone_country_code", fmt.Sprintf("PhoneCountryCode with id %d does not exist.", *payload.PhoneCountryCodeID))
		}
	}

	payrollValues := map[string]struct {
		value *string
		dst   **string
	}{
		"emirates_id":            {payload.EmiratesID, &cleaned.EmiratesID},
		"labour_card_number":     {payload.LabourCardNumber, &cleaned.LabourCardNumber},
		"mohre_establishment_id": {payload.MOHREEstablishmentID, &cleaned.MOHREEstablishmentID},
	}
	for _, field := range payrollMandatoryFields {
		f := payrollValues[field]
		if f.value == nil || validator.IsEmpty(*f.value) {
			errs = errs.Add(field, validator.FieldLabel(field)+" is mandatory for payroll inclusion.")
		} else {
			*f.dst = f.value
		}
	}

	if payload.PassportNumber != nil && !validator.IsEmpty(*payload.PassportNumber) {
		cleaned.PassportNumber = payload.PassportNumber
	}

	dateFields := []struct {
		field string
		value *string
		dst   **time.Time
	}{
		{"visa_expiry", payload.VisaExpiry, &cleaned.VisaExpiry},
		{"contract_start_date", payload.ContractStartDate, &cleaned.ContractStartDate},
		{"contract_end_date", payload.ContractEndDate, &cleaned.ContractEndDate},
	}
	for _, f := range dateFields {
		if f.value == nil || validator.IsEmpty(*f.value) {
			continue
		}
		parsed, ok := validator.IsValidDate(*f.value)
		if !ok {
			errs = errs.Add(f.field, validator.FieldLabel(f.field)+" must be in YYYY-MM-DD format.")
			continue
		}
		*f.dst = &parsed

		if f.field == "visa_expiry" {
			today := truncateToDay(time.Now().UTC())
			limit := today.AddDate(0, 0, 30)
			if !parsed.After(limit) {
				errs = errs.Add(f.field, fmt.Sprintf(
					"Visa expires in next 30 days. Expiry date: %s, Current date: %s",
					parsed.Format("2006-01-02"), today.Format("2006-01-02"),
				))
			}
		}
	}

	fkChecks := []struct {
		field  string
		entity string
		id     *int64
		dst    **int64
		exists func(context.Context, int64) (bool, error)
	}{
		{"contract_type", "ContractType", payload.ContractTypeID, &cleaned.ContractTypeID, s.contractTypeRepo.ExistsActiveByID},
		{"department", "Department", payload.DepartmentID, &cleaned.DepartmentID, s.departmentRepo.ExistsActiveByID},
		{"location", "Location", payload.LocationID, &cleaned.LocationID, s.locationRepo.ExistsActiveByID},
		{"bank", "Bank", payload.BankID, &cleaned.BankID, s.bankRepo.ExistsActiveByID},
		{"job_title", "JobTitle", payload.JobTitleID, &cleaned.JobTitleID, s.jobTitleRepo.ExistsActiveByID},
	}
	for _, f := range fkChecks {
		if f.id == nil {
			continue
		}
		exists, err := f.exists(ctx, *f.id)
		if err != nil {
			return employee.CleanedData{}, nil, fmt.Errorf("failed to check %s: %w", f.field, err)
		}
		if exists {
			*f.dst = f.id
		} else {
			errs = errs.Add(f.field, fmt.Sprintf("%s with id %d does not exist.", f.entity, *f.id))
		}
	}

	if len(payload.CustomFields) > 0 && string(payload.CustomFields) != "null" {
		var fields map[string]any
		if err := json.Unmarshal(payload.CustomFields, &fields); err != nil {
			errs = errs.Add("custom_fields", "custom_fields must be a JSON object.")
		} else {
			cleaned.CustomFields = fields
		}
	}

	return cleaned, errs, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
