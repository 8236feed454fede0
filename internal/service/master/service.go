package master

import (
	"context"
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/bank"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/contracttype"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/customfield"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/department"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/designation"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/fieldtype"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/jobtitle"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/location"
	"github.com/emiratehr/payroll-backend-go/internal/domain/master/phonecode"
)

type MasterService interface {
	// ContractType operations
	CreateContractType(ctx context.Context, payload contracttype.ContractTypePayload) (contracttype.ContractTypeResponse, error)
	GetContractType(ctx context.Context, id int64) (contracttype.ContractTypeResponse, error)
	ListContractTypes(ctx context.Context) ([]contracttype.ContractTypeResponse, error)
	UpdateContractType(ctx context.Context, id int64, payload contracttype.ContractTypePayload) (contracttype.ContractTypeResponse, error)
	DeleteContractType(ctx context.Context, id int64) error

	// JobTitle operations
	CreateJobTitle(ctx context.Context, payload jobtitle.JobTitlePayload) (jobtitle.JobTitleResponse, error)
	GetJobTitle(ctx context.Context, id int64) (jobtitle.JobTitleResponse, error)
	ListJobTitles(ctx context.Context) ([]jobtitle.JobTitleResponse, error)
	UpdateJobTitle(ctx context.Context, id int64, payload jobtitle.JobTitlePayload) (jobtitle.JobTitleResponse, error)
	DeleteJobTitle(ctx context.Context, id int64) error

	// Department operations
	CreateDepartment(ctx context.Context, payload department.DepartmentPayload) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id int64) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, id int64, payload department.DepartmentPayload) (department.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id int64) error

	// Location operations
	CreateLocation(ctx context.Context, payload location.LocationPayload) (location.LocationResponse, error)
	GetLocation(ctx context.Context, id int64) (location.LocationResponse, error)
	ListLocations(ctx context.Context) ([]location.LocationResponse, error)
	UpdateLocation(ctx context.Context, id int64, payload location.LocationPayload) (location.LocationResponse, error)
	DeleteLocation(ctx context.Context, id int64) error

	// FieldType operations
	CreateFieldType(ctx context.Context, payload fieldtype.FieldTypePayload) (fieldtype.FieldTypeResponse, error)
	GetFieldType(ctx context.Context, id int64) (fieldtype.FieldTypeResponse, error)
	ListFieldTypes(ctx context.Context) ([]fieldtype.FieldTypeResponse, error)
	UpdateFieldType(ctx context.Context, id int64, payload fieldtype.FieldTypePayload) (fieldtype.FieldTypeResponse, error)
	DeleteFieldType(ctx context.Context, id int64) error

	// Bank operations
	CreateBank(ctx context.Context, payload bank.BankPayload) (bank.BankResponse, error)
	GetBank(ctx context.Context, id int64) (bank.BankResponse, error)
	ListBanks(ctx context.Context) ([]bank.BankResponse, error)
	UpdateBank(ctx context.Context, id int64, payload bank.BankPayload) (bank.BankResponse, error)
	DeleteBank(ctx context.Context, id int64) error

	// PhoneCountryCode operations
	CreateCountryCode(ctx context.Context, payload phonecode.PhoneCountryCodePayload) (phonecode.PhoneCountryCodeResponse, error)
	GetCountryCode(ctx context.Context, id int64) (phonecode.PhoneCountryCodeResponse, error)
	ListCountryCodes(ctx context.Context) ([]phonecode.PhoneCountryCodeResponse, error)
	ListCountryCodeDropdown(ctx context.Context) ([]phonecode.DropdownResponse, error)
	UpdateCountryCode(ctx context.Context, id int64, payload phonecode.PhoneCountryCodePayload) (phonecode.PhoneCountryCodeResponse, error)
	DeleteCountryCode(ctx context.Context, id int64) error

	// Designation operations
	CreateDesignation(ctx context.Context, payload designation.DesignationPayload) (designation.DesignationResponse, error)
	GetDesignation(ctx context.Context, id int64) (designation.DesignationResponse, error)
	ListDesignations(ctx context.Context) ([]designation.DesignationResponse, error)
	UpdateDesignation(ctx context.Context, id int64, payload designation.DesignationPayload) (designation.DesignationResponse, error)
	DeleteDesignation(ctx context.Context, id int64) error

	// Custom field configuration operations
	CreateCustomField(ctx context.Context, payload customfield.CustomFieldPayload) (customfield.CustomFieldResponse, error)
	GetCustomField(ctx context.Context, id int64) (customfield.CustomFieldResponse, error)
	ListCustomFields(ctx context.Context) ([]customfield.CustomFieldResponse, error)
	ListSelectedCustomFields(ctx context.Context) ([]customfield.CustomFieldResponse, error)
	UpdateCustomField(ctx context.Context, id int64, payload customfield.CustomFieldPayload) (customfield.CustomFieldResponse, error)
	DeleteCustomField(ctx context.Context, id int64) error
}

type masterServiceImpl struct {
	contractTypeRepo contracttype.ContractTypeRepository
	jobTitleRepo     jobtitle.JobTitleRepository
	departmentRepo   department.DepartmentRepository
	locationRepo     location.LocationRepository
	fieldTypeRepo    fieldtype.FieldTypeRepository
	bankRepo         bank.BankRepository
	phoneCodeRepo    phonecode.PhoneCountryCodeRepository
	designationRepo  designation.DesignationRepository
	customFieldRepo  customfield.CustomFieldConfigRepository
}

func NewMasterService(
	contractTypeRepo contracttype.ContractTypeRepository,
	jobTitleRepo jobtitle.JobTitleRepository,
	departmentRepo department.DepartmentRepository,
	locationRepo location.LocationRepository,
	fieldTypeRepo fieldtype.FieldTypeRepository,
	bankRepo bank.BankRepository,
	phoneCodeRepo phonecode.PhoneCountryCodeRepository,
	designationRepo designation.DesignationRepository,
	customFieldRepo customfield.CustomFieldConfigRepository,
) MasterService {
	return &masterServiceImpl{
		contractTypeRepo: contractTypeRepo,
		jobTitleRepo:     jobTitleRepo,
		departmentRepo:   departmentRepo,
		locationRepo:     locationRepo,
		fieldTypeRepo:    fieldTypeRepo,
		bankRepo:         bankRepo,
		phoneCodeRepo:    phoneCodeRepo,
		designationRepo:  designationRepo,
		customFieldRepo:  customFieldRepo,
	}
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
