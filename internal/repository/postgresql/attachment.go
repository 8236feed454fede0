package postgresql

import (
	"context"
	"fmt"

	"github.com/emiratehr/payroll-backend-go/internal/domain/attachment"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attachmentRepositoryImpl struct {
	db *database.DB
}

func NewAttachmentRepository(db *database.DB) attachment.AttachmentRepository {
	return &attachmentRepositoryImpl{db: db}
}

func (r *attachmentRepositoryImpl) Create(ctx context.Context, a attachment.Attachment) (attachment.Attachment, error) {
	query := `
		INSERT INTO attachments (document_url, employee_id, original_filename, uploaded_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, document_url, employee_id, original_filename, uploaded_at
	`

	var created attachment.Attachment
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, a.DocumentURL, a.EmployeeID, a.OriginalFilename).Scan(
		&created.ID,
		&created.DocumentURL,
		&created.EmployeeID,
		&created.OriginalFilename,
		&created.UploadedAt,
	)
	if err != nil {
		return attachment.Attachment{}, fmt.Errorf("failed to insert attachment: %w", err)
	}

	return created, nil
}

func (r *attachmentRepositoryImpl) GetByID(ctx context.Context, id int64) (attachment.Attachment, error) {
	query := `
		SELECT id, document_url, employee_id, original_filename, uploaded_at
		FROM attachments
		WHERE id = $1
	`

	var a attachment.Attachment
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.DocumentURL,
		&a.EmployeeID,
		&a.OriginalFilename,
		&a.UploadedAt,
	)
	if err != nil {
		return attachment.Attachment{}, err
	}

	return a, nil
}

func (r *attachmentRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID int64) ([]attachment.Attachment, error) {
	query := `
		SELECT id, document_url, employee_id, original_filename, uploaded_at
		FROM attachments
		WHERE employee_id = $1
		ORDER BY uploaded_at DESC
	`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	defer rows.Close()

	var attachments []attachment.Attachment
	for rows.Next() {
		var a attachment.Attachment
		if err := rows.Scan(&a.ID, &a.DocumentURL, &a.EmployeeID, &a.OriginalFilename, &a.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		attachments = append(attachments, a)
	}

	return attachments, rows.Err()
}

func (r *attachmentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM attachments WHERE id = $1`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
