package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/domain/attachment"
	"github.com/emiratehr/payroll-backend-go/internal/domain/employee"
	"github.com/emiratehr/payroll-backend-go/internal/domain/user"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
	"github.com/emiratehr/payroll-backend-go/internal/repository/postgresql"
	"github.com/emiratehr/payroll-backend-go/internal/service/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// ReferenceChecker reports whether an active row of one reference entity
// exists. Every reference repository satisfies it.
type ReferenceChecker interface {
	ExistsActiveByID(ctx context.Context, id int64) (bool, error)
}

// Transactor runs fn inside one storage transaction; repository calls made
// through the context fn receives join it. postgresql.TxRunner satisfies it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

type employeeServiceImpl struct {
	tx               Transactor
	employeeRepo     employee.EmployeeRepository
	userRepo         user.UserRepository
	attachmentRepo   attachment.AttachmentRepository
	phoneCodeRepo    ReferenceChecker
	contractTypeRepo ReferenceChecker
	departmentRepo   ReferenceChecker
	locationRepo     ReferenceChecker
	bankRepo         ReferenceChecker
	jobTitleRepo     ReferenceChecker
	fileService      file.FileService
}

func NewEmployeeService(
	tx Transactor,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	attachmentRepo attachment.AttachmentRepository,
	phoneCodeRepo ReferenceChecker,
	contractTypeRepo ReferenceChecker,
	departmentRepo ReferenceChecker,
	locationRepo ReferenceChecker,
	bankRepo ReferenceChecker,
	jobTitleRepo ReferenceChecker,
	fileService file.FileService,
) employee.EmployeeService {
	return &employeeServiceImpl{
		tx:               tx,
		employeeRepo:     employeeRepo,
		userRepo:         userRepo,
		attachmentRepo:   attachmentRepo,
		phoneCodeRepo:    phoneCodeRepo,
		contractTypeRepo: contractTypeRepo,
		departmentRepo:   departmentRepo,
		locationRepo:     locationRepo,
		bankRepo:         bankRepo,
		jobTitleRepo:     jobTitleRepo,
		fileService:      fileService,
	}
}

func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, payload employee.Payload, files []employee.UploadedFile) (employee.CreateEmployeeResponse, error) {
	cleaned, errs, err := s.validatePayload(ctx, payload)
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}
	if len(errs) > 0 {
		return employee.CreateEmployeeResponse{}, errs
	}

	// The login name is the phone number; the initial secret is random and
	// surfaces exactly once, in this response.
	loginName := *cleaned.PhoneNumber
	initialSecret := uuid.New().String()
	hash, err := bcrypt.GenerateFromPassword([]byte(initialSecret), bcrypt.DefaultCost)
	if err != nil {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to hash initial secret: %w", err)
	}

	var (
		created       employee.Employee
		saved         []employee.SavedAttachment
		uploadedPaths []string
	)

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		identity, err := s.userRepo.Create(txCtx, user.User{
			Username:     loginName,
			PasswordHash: string(hash),
		})
		if err != nil {
			return err
		}

		entity := entityFromCleaned(cleaned)
		entity.UserID = &identity.ID

		created, err = s.employeeRepo.Create(txCtx, entity)
		if err != nil {
			return err
		}

		// Any upload failure aborts the whole transaction.
		for _, f := range files {
			doc, err := s.fileService.UploadDocument(ctx, f.Reader, f.Filename)
			if err != nil {
				return fmt.Errorf("%w: %s", attachment.ErrUploadFailed, f.Filename)
			}
			uploadedPaths = append(uploadedPaths, doc.Path)

			if _, err := s.attachmentRepo.Create(txCtx, attachment.Attachment{
				DocumentURL:      doc.URL,
				EmployeeID:       &created.ID,
				OriginalFilename: f.Filename,
			}); err != nil {
				return err
			}

			saved = append(saved, employee.SavedAttachment{
				FileName:    f.Filename,
				DocumentURL: doc.URL,
			})
		}

		return nil
	})
	if err != nil {
		// The rollback leaves any already-written files orphaned; remove them
		// best effort.
		for _, path := range uploadedPaths {
			_ = s.fileService.DeleteDocument(ctx, path)
		}
		if constraint, ok := postgresql.UniqueViolation(err); ok {
			return employee.CreateEmployeeResponse{}, employeeUniqueError(constraint)
		}
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.CreateEmployeeResponse{
		Employee:      toEmployeeResponse(created),
		Attachments:   saved,
		LoginName:     loginName,
		InitialSecret: initialSecret,
	}, nil
}

func (s *employeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	entity, err := s.employeeRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(entity), nil
}

func (s *employeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	entities, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, toEmployeeResponse(entity))
	}

	return responses, nil
}

func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, id int64, payload employee.Payload) (employee.EmployeeResponse, error) {
	entity, err := s.employeeRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, err
	}

	cleaned, errs, err := s.validatePayload(ctx, payload)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if len(errs) > 0 {
		return employee.EmployeeResponse{}, errs
	}

	mergeCleaned(&entity, cleaned)

	if err := s.employeeRepo.Update(ctx, entity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		if constraint, ok := postgresql.UniqueViolation(err); ok {
			return employee.EmployeeResponse{}, employeeUniqueError(constraint)
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return toEmployeeResponse(entity), nil
}

func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.employeeRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

func (s *employeeServiceImpl) VisaExpiryAlert(ctx context.Context) (employee.VisaExpiryAlertResponse, error) {
	today := truncateToDay(time.Now().UTC())
	limit := today.AddDate(0, 0, 30)

	entities, err := s.employeeRepo.ListVisaExpiring(ctx, today, limit)
	if err != nil {
		return employee.VisaExpiryAlertResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, toEmployeeResponse(entity))
	}

	return employee.VisaExpiryAlertResponse{
		Count:     len(responses),
		Employees: responses,
	}, nil
}

// entityFromCleaned builds a fresh employee row from validated create data.
// The required fields are guaranteed non-nil once validation passed.
func entityFromCleaned(cleaned employee.CleanedData) employee.Employee {
	return employee.Employee{
		FirstName:            *cleaned.FirstName,
		LastName:             *cleaned.LastName,
		PhoneNumber:          *cleaned.PhoneNumber,
		PhoneCountryCodeID:   cleaned.PhoneCountryCodeID,
		EmiratesID:           cleaned.EmiratesID,
		PassportNumber:       cleaned.PassportNumber,
		LabourCardNumber:     cleaned.LabourCardNumber,
		MOHREEstablishmentID: cleaned.MOHREEstablishmentID,
		VisaExpiry:           cleaned.VisaExpiry,
		ContractTypeID:       cleaned.ContractTypeID,
		ContractStartDate:    cleaned.ContractStartDate,
		ContractEndDate:      cleaned.ContractEndDate,
		DepartmentID:         cleaned.DepartmentID,
		LocationID:           cleaned.LocationID,
		BankID:               cleaned.BankID,
		JobTitleID:           cleaned.JobTitleID,
		IBAN:                 *cleaned.IBAN,
		CustomFields:         cleaned.CustomFields,
	}
}

// mergeCleaned assigns exactly the fields present in cleaned onto the stored
// row. Fields the caller omitted, or that failed validation, keep their
// stored value.
func mergeCleaned(entity *employee.Employee, cleaned employee.CleanedData) {
	if cleaned.FirstName != nil {
		entity.FirstName = *cleaned.FirstName
	}
	if cleaned.LastName != nil {
		entity.LastName = *cleaned.LastName
	}
	if cleaned.PhoneNumber != nil {
		entity.PhoneNumber = *cleaned.PhoneNumber
	}
	if cleaned.PhoneCountryCodeID != nil {
		entity.PhoneCountryCodeID = cleaned.PhoneCountryCodeID
	}
	if cleaned.EmiratesID != nil {
		entity.EmiratesID = cleaned.EmiratesID
	}
	if cleaned.PassportNumber != nil {
		entity.PassportNumber = cleaned.PassportNumber
	}
	if cleaned.LabourCardNumber != nil {
		entity.LabourCardNumber = cleaned.LabourCardNumber
	}
	if cleaned.MOHREEstablishmentID != nil {
		entity.MOHREEstablishmentID = cleaned.MOHREEstablishmentID
	}
	if cleaned.VisaExpiry != nil {
		entity.VisaExpiry = cleaned.VisaExpiry
	}
	if cleaned.ContractTypeID != nil {
		entity.ContractTypeID = cleaned.ContractTypeID
	}
	if cleaned.ContractStartDate != nil {
		entity.ContractStartDate = cleaned.ContractStartDate
	}
	if cleaned.ContractEndDate != nil {
		entity.ContractEndDate = cleaned.ContractEndDate
	}
	if cleaned.DepartmentID != nil {
		entity.DepartmentID = cleaned.DepartmentID
	}
	if cleaned.LocationID != nil {
		entity.LocationID = cleaned.LocationID
	}
	if cleaned.BankID != nil {
		entity.BankID = cleaned.BankID
	}
	if cleaned.JobTitleID != nil {
		entity.JobTitleID = cleaned.JobTitleID
	}
	if cleaned.IBAN != nil {
		entity.IBAN = *cleaned.IBAN
	}
	if cleaned.CustomFields != nil {
		entity.CustomFields = cleaned.CustomFields
	}
}

// employeeUniqueError maps a storage-level unique violation back onto the
// field-error shape the validator produces.
func employeeUniqueError(constraint string) validator.ValidationErrors {
	switch constraint {
	case "uq_employees_iban":
		return validator.ValidationErrors{}.Add("iban", "IBAN already exists.")
	case "uq_employees_emirates_id":
		return validator.ValidationErrors{}.Add("emirates_id", "Emirates id already exists.")
	default:
		// uq_employees_phone_number, or the users table username backstop;
		// the username is the phone number either way.
		return validator.ValidationErrors{}.Add("phone_number", "Phone number already exists.")
	}
}

func toEmployeeResponse(entity employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                   entity.ID,
		UserID:               entity.UserID,
		FirstName:            entity.FirstName,
		LastName:             entity.LastName,
		PhoneNumber:          entity.PhoneNumber,
		PhoneCountryCodeID:   entity.PhoneCountryCodeID,
		EmiratesID:           entity.EmiratesID,
		PassportNumber:       entity.PassportNumber,
		LabourCardNumber:     entity.LabourCardNumber,
		MOHREEstablishmentID: entity.MOHREEstablishmentID,
		VisaExpiry:           formatDate(entity.VisaExpiry),
		ContractTypeID:       entity.ContractTypeID,
		ContractStartDate:    formatDate(entity.ContractStartDate),
		ContractEndDate:      formatDate(entity.ContractEndDate),
		DepartmentID:         entity.DepartmentID,
		LocationID:           entity.LocationID,
		BankID:               entity.BankID,
		JobTitleID:           entity.JobTitleID,
		IBAN:                 entity.IBAN,
		CustomFields:         entity.CustomFields,
		CreatedAt:            entity.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            entity.UpdatedAt.Format(time.RFC3339),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
