package postgresql

import (
	"context"
	"fmt"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/designation"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type designationRepositoryImpl struct {
	db *database.DB
}

func NewDesignationRepository(db *database.DB) designation.DesignationRepository {
	return &designationRepositoryImpl{db: db}
}

func (r *designationRepositoryImpl) Create(ctx context.Context, d designation.Designation) (designation.Designation, error) {
	query := `
		INSERT INTO designations (name, description, department_id, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, NOW(), NOW())
		RETURNING id, name, description, department_id, deleted, created_at, updated_at
	`

	var created designation.Designation
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, d.Name, d.Description, d.DepartmentID).Scan(
		&created.ID,
		&created.Name,
		&created.Description,
		&created.DepartmentID,
		&created.Deleted,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return designation.Designation{}, fmt.Errorf("failed to insert designation: %w", err)
	}

	return created, nil
}

func (r *designationRepositoryImpl) GetActiveByID(ctx context.Context, id int64) (designation.Designation, error) {
	query := `
		SELECT id, name, description, department_id, deleted, created_at, updated_at
		FROM designations
		WHERE id = $1 AND NOT deleted
	`

	var d designation.Designation
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&d.ID,
		&d.Name,
		&d.Description,
		&d.DepartmentID,
		&d.Deleted,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return designation.Designation{}, err
	}

	return d, nil
}

func (r *designationRepositoryImpl) ListActive(ctx context.Context) ([]designation.Designation, error) {
	query := `
		SELECT id, name, description, department_id, deleted, created_at, updated_at
		FROM designations
		WHERE NOT deleted
		ORDER BY name ASC
	`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list designations: %w", err)
	}
	defer rows.Close()

	var designations []designation.Designation
	for rows.Next() {
		var d designation.Designation
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.DepartmentID, &d.Deleted, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan designation: %w", err)
		}
		designations = append(designations, d)
	}

	return designations, rows.Err()
}

func (r *designationRepositoryImpl) Update(ctx context.Context, d designation.Designation) error {
	query := `
		UPDATE designations
		SET name = $2, description = $3, department_id = $4, updated_at = NOW()
		WHERE id = $1 AND NOT deleted
	`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query, d.ID, d.Name, d.Description, d.DepartmentID)
	if err != nil {
		return fmt.Errorf("failed to update designation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *designationRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE designations
		SET deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT deleted
	`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete designation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *designationRepositoryImpl) ExistsActiveByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM designations
			WHERE name = $1 AND id <> $2 AND NOT deleted
		)
	`

	var exists bool
	if err := GetQuerier(ctx, r.db).QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check designation name: %w", err)
	}

	return exists, nil
}
