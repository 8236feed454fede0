package attachment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/domain/attachment"
	"github.com/emiratehr/payroll-backend-go/internal/domain/employee"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
	"github.com/emiratehr/payroll-backend-go/internal/service/file"
	"github.com/jackc/pgx/v5"
)

type AttachmentService interface {
	// UploadAttachments stores the batch for one employee. The batch is
	// atomic: any single upload failure rolls back every row created in the
	// same request.
	UploadAttachments(ctx context.Context, employeeID int64, files []employee.UploadedFile) ([]attachment.UploadResult, error)

	// GetAttachment fetches one attachment by id
	GetAttachment(ctx context.Context, id int64) (attachment.AttachmentResponse, error)

	// ListAttachments returns all attachments owned by an employee, with count
	ListAttachments(ctx context.Context, employeeID int64) (attachment.ListAttachmentsResponse, error)

	// DeleteAttachment removes the row permanently
	DeleteAttachment(ctx context.Context, id int64) error
}

// Transactor runs fn inside one storage transaction; repository calls made
// through the context fn receives join it. postgresql.TxRunner satisfies it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

type attachmentServiceImpl struct {
	tx             Transactor
	attachmentRepo attachment.AttachmentRepository
	employeeRepo   employee.EmployeeRepository
	fileService    file.FileService
}

func NewAttachmentService(
	tx Transactor,
	attachmentRepo attachment.AttachmentRepository,
	employeeRepo employee.EmployeeRepository,
	fileService file.FileService,
) AttachmentService {
	return &attachmentServiceImpl{
		tx:             tx,
		attachmentRepo: attachmentRepo,
		employeeRepo:   employeeRepo,
		fileService:    fileService,
	}
}

func (s *attachmentServiceImpl) UploadAttachments(ctx context.Context, employeeID int64, files []employee.UploadedFile) ([]attachment.UploadResult, error) {
	var errs validator.ValidationErrors
	if employeeID == 0 {
		errs = errs.Add("employee_id", "Employee id is required.")
	}
	if len(files) == 0 {
		errs = errs.Add("files", "At least one file is required.")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.employeeRepo.GetActiveByID(ctx, employeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	var (
		results       []attachment.UploadResult
		uploadedPaths []string
	)

	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		for _, f := range files {
			doc, err := s.fileService.UploadDocument(ctx, f.Reader, f.Filename)
			if err != nil {
				return fmt.Errorf("%w: %s", attachment.ErrUploadFailed, f.Filename)
			}
			uploadedPaths = append(uploadedPaths, doc.Path)

			created, err := s.attachmentRepo.Create(txCtx, attachment.Attachment{
				DocumentURL:      doc.URL,
				EmployeeID:       &employeeID,
				OriginalFilename: f.Filename,
			})
			if err != nil {
				return err
			}

			results = append(results, attachment.UploadResult{
				OriginalFilename: created.OriginalFilename,
				EmployeeID:       employeeID,
				DocumentURL:      created.DocumentURL,
				UploadedAt:       created.UploadedAt.Format(time.RFC3339),
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
		return nil, err
	}

	return results, nil
}

func (s *attachmentServiceImpl) GetAttachment(ctx context.Context, id int64) (attachment.AttachmentResponse, error) {
	entity, err := s.attachmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attachment.AttachmentResponse{}, attachment.ErrAttachmentNotFound
		}
		return attachment.AttachmentResponse{}, err
	}

	return toAttachmentResponse(entity), nil
}

func (s *attachmentServiceImpl) ListAttachments(ctx context.Context, employeeID int64) (attachment.ListAttachmentsResponse, error) {
	entities, err := s.attachmentRepo.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return attachment.ListAttachmentsResponse{}, err
	}

	results := make([]attachment.AttachmentResponse, 0, len(entities))
	for _, entity := range entities {
		results = append(results, toAttachmentResponse(entity))
	}

	return attachment.ListAttachmentsResponse{
		Count:   len(results),
		Results: results,
	}, nil
}

func (s *attachmentServiceImpl) DeleteAttachment(ctx context.Context, id int64) error {
	if err := s.attachmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attachment.ErrAttachmentNotFound
		}
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	return nil
}

func toAttachmentResponse(entity attachment.Attachment) attachment.AttachmentResponse {
	return attachment.AttachmentResponse{
		ID:               entity.ID,
		DocumentURL:      entity.DocumentURL,
		EmployeeID:       entity.EmployeeID,
		UploadedAt:       entity.UploadedAt.Format(time.RFC3339),
		OriginalFilename: entity.OriginalFilename,
	}
}
