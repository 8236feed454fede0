package postgresql

import (
	"context"
	"fmt"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/customfield"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type customFieldRepositoryImpl struct {
	db *database.DB
}

func NewCustomFieldConfigRepository(db *database.DB) customfield.CustomFieldConfigRepository {
	return &customFieldRepositoryImpl{db: db}
}

func (r *customFieldRepositoryImpl) Create(ctx context.Context, c customfield.CustomFieldConfig) (customfield.CustomFieldConfig, error) {
	query := `
		INSERT INTO employee_custom_field_configs
			(field_key, field_label, field_type_id, is_selected, is_required, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW(), NOW())
		RETURNING id, field_key, field_label, field_type_id, is_selected, is_required, deleted, created_at, updated_at
	`

	var created customfield.CustomFieldConfig
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query,
		c.FieldKey, c.FieldLabel, c.FieldTypeID, c.IsSelected, c.IsRequired,
	).Scan(
		&created.ID,
		&created.FieldKey,
		&created.FieldLabel,
		&created.FieldTypeID,
		&created.IsSelected,
		&created.IsRequired,
		&created.Deleted,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return customfield.CustomFieldConfig{}, fmt.Errorf("failed to insert custom field config: %w", err)
	}

	return created, nil
}

const customFieldWithTypeColumns = `
	c.id, c.field_key, c.field_label, c.field_type_id, c.is_selected, c.is_required,
	c.deleted, c.created_at, c.updated_at, t.name AS field_type_name
`

func scanCustomFieldWithType(row pgx.Row) (customfield.CustomFieldWithType, error) {
	var c customfield.CustomFieldWithType
	err := row.Scan(
		&c.ID,
		&c.FieldKey,
		&c.FieldLabel,
		&c.FieldTypeID,
		&c.IsSelected,
		&c.IsRequired,
		&c.Deleted,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.FieldTypeName,
	)
	return c, err
}

func (r *customFieldRepositoryImpl) GetActiveByID(ctx context.Context, id int64) (customfield.CustomFieldWithType, error) {
	query := `
		SELECT ` + customFieldWithTypeColumns + `
		FROM employee_custom_field_configs c
		LEFT JOIN field_types t ON t.id = c.field_type_id AND NOT t.deleted
		WHERE c.id = $1 AND NOT c.deleted
	`

	return scanCustomFieldWithType(GetQuerier(ctx, r.db).QueryRow(ctx, query, id))
}

func (r *customFieldRepositoryImpl) ListActive(ctx context.Context) ([]customfield.CustomFieldWithType, error) {
	query := `
		SELECT ` + customFieldWithTypeColumns + `
		FROM employee_custom_field_configs c
		LEFT JOIN field_types t ON t.id = c.field_type_id AND NOT t.deleted
		WHERE NOT c.deleted
		ORDER BY c.field_key ASC
	`

	return r.list(ctx, query)
}

func (r *customFieldRepositoryImpl) ListSelected(ctx context.Context) ([]customfield.CustomFieldWithType, error) {
	query := `
		SELECT ` + customFieldWithTypeColumns + `
		FROM employee_custom_field_configs c
		LEFT JOIN field_types t ON t.id = c.field_type_id AND NOT t.deleted
		WHERE NOT c.deleted AND c.is_selected
		ORDER BY c.field_key ASC
	`

	return r.list(ctx, query)
}

func (r *customFieldRepositoryImpl) list(ctx context.Context, query string) ([]customfield.CustomFieldWithType, error) {
	rows, err := GetQuerier(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom field configs: %w", err)
	}
	defer rows.Close()

	var fields []customfield.CustomFieldWithType
	for rows.Next() {
		c, err := scanCustomFieldWithType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan custom field config: %w", err)
		}
		fields = append(fields, c)
	}

	return fields, rows.Err()
}

func (r *customFieldRepositoryImpl) Update(ctx context.Context, c customfield.CustomFieldConfig) error {
	query := `
		UPDATE employee_custom_field_configs
		SET field_key = $2, field_label = $3, field_type_id = $4,
			is_selected = $5, is_required = $6, updated_at = NOW()
		WHERE id = $1 AND NOT deleted
	`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query,
		c.ID, c.FieldKey, c.FieldLabel, c.FieldTypeID, c.IsSelected, c.IsRequired,
	)
	if err != nil {
		return fmt.Errorf("failed to update custom field config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *customFieldRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE employee_custom_field_configs
		SET deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT deleted
	`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete custom field config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *customFieldRepositoryImpl) ExistsActiveByFieldKey(ctx context.Context, fieldKey string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM employee_custom_field_configs
			WHERE field_key = $1 AND id <> $2 AND NOT deleted
		)
	`

	var exists bool
	if err := GetQuerier(ctx, r.db).QueryRow(ctx, query, fieldKey, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check custom field key: %w", err)
	}

	return exists, nil
}
