package response

import (
	"errors"
	"net/http"

	"github.com/emiratehr/payroll-backend-go/internal/domain/attachment"
	"github.com/emiratehr/payroll-backend-go/internal/domain/employee"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/bank"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/contracttype"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/customfield"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/department"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/designation"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/fieldtype"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/jobtitle"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/location"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/phonecode"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Field-scoped validation failures carry their own details map
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Reference entity errors
	case errors.Is(err, contracttype.ErrContractTypeNotFound):
		NotFound(w, "Contract type not found")
	case errors.Is(err, jobtitle.ErrJobTitleNotFound):
		NotFound(w, "Job title not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Location not found")
	case errors.Is(err, fieldtype.ErrFieldTypeNotFound):
		NotFound(w, "Field type not found")
	case errors.Is(err, bank.ErrBankNotFound):
		NotFound(w, "Bank not found")
	case errors.Is(err, phonecode.ErrCountryCodeNotFound):
		NotFound(w, "Country code not found")
	case errors.Is(err, designation.ErrDesignationNotFound):
		NotFound(w, "Designation not found")
	case errors.Is(err, customfield.ErrCustomFieldNotFound):
		NotFound(w, "Custom field not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attachment domain errors
	case errors.Is(err, attachment.ErrAttachmentNotFound):
		NotFound(w, "Attachment not found")
	case errors.Is(err, attachment.ErrUploadFailed):
		InternalServerError(w, "File upload failed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
