package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// refTable implements the storage operations shared by the simple named
// lookup tables (contract types, job titles, departments, locations, field
// types). Each of those tables has the same shape: id, name, deleted,
// created_at, updated_at, with name unique among non-deleted rows.
type refTable struct {
	table string
}

type refRow struct {
	ID        int64
	Name      string
	Deleted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t refTable) insert(ctx context.Context, q database.Querier, name string) (refRow, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, deleted, created_at, updated_at)
		VALUES ($1, FALSE, NOW(), NOW())
		RETURNING id, name, deleted, created_at, updated_at
	`, t.table)

	var row refRow
	err := q.QueryRow(ctx, query, name).Scan(
		&row.ID,
		&row.Name,
		&row.Deleted,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return refRow{}, fmt.Errorf("failed to insert into %s: %w", t.table, err)
	}

	return row, nil
}

func (t refTable) getActive(ctx context.Context, q database.Querier, id int64) (refRow, error) {
	query := fmt.Sprintf(`
		SELECT id, name, deleted, created_at, updated_at
		FROM %s
		WHERE id = $1 AND NOT deleted
	`, t.table)

	var row refRow
	err := q.QueryRow(ctx, query, id).Scan(
		&row.ID,
		&row.Name,
		&row.Deleted,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return refRow{}, err
	}

	return row, nil
}

func (t refTable) listActive(ctx context.Context, q database.Querier) ([]refRow, error) {
	query := fmt.Sprintf(`
		SELECT id, name, deleted, created_at, updated_at
		FROM %s
		WHERE NOT deleted
		ORDER BY name ASC
	`, t.table)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.table, err)
	}
	defer rows.Close()

	var result []refRow
	for rows.Next() {
		var row refRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Deleted, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", t.table, err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

func (t refTable) updateName(ctx context.Context, q database.Querier, id int64, name string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET name = $1, updated_at = NOW()
		WHERE id = $2 AND NOT deleted
	`, t.table)

	commandTag, err := q.Exec(ctx, query, name, id)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", t.table, err)
	}

	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (t refTable) softDelete(ctx context.Context, q database.Querier, id int64) error {
	query := fmt.Sprintf(`
		UPDATE %s SET deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT deleted
	`, t.table)

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to soft delete from %s: %w", t.table, err)
	}

	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (t refTable) existsActiveName(ctx context.Context, q database.Querier, name string, excludeID int64) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s WHERE name = $1 AND NOT deleted AND id <> $2
		)
	`, t.table)

	var exists bool
	if err := q.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check name in %s: %w", t.table, err)
	}

	return exists, nil
}

func (t refTable) existsActiveID(ctx context.Context, q database.Querier, id int64) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s WHERE id = $1 AND NOT deleted
		)
	`, t.table)

	var exists bool
	if err := q.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check id in %s: %w", t.table, err)
	}

	return exists, nil
}
