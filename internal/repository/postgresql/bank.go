package postgresql

import (
	"context"
	"fmt"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/bank"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type bankRepositoryImpl struct {
	db *database.DB
}

func NewBankRepository(db *database.DB) bank.BankRepository {
	return &bankRepositoryImpl{db: db}
}

func (r *bankRepositoryImpl) Create(ctx context.Context, b bank.Bank) (bank.Bank, error) {
	query := `
		INSERT INTO banks (name, swift_code, deleted, created_at, updated_at)
		VALUES ($1, $2, FALSE, NOW(), NOW())
		RETURNING id, name, swift_code, deleted, created_at, updated_at
	`

	var created bank.Bank
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, b.Name, b.SwiftCode).Scan(
		&created.ID,
		&created.Name,
		&created.SwiftCode,
		&created.Deleted,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return bank.Bank{}, fmt.Errorf("failed to insert bank: %w", err)
	}

	return created, nil
}

func (r *bankRepositoryImpl) GetActiveByID(ctx context.Context, id int64) (bank.Bank, error) {
	query := `
		SELECT id, name, swift_code, deleted, created_at, updated_at
		FROM banks
		WHERE id = $1 AND NOT deleted
	`

	var b bank.Bank
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Name,
		&b.SwiftCode,
		&b.Deleted,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return bank.Bank{}, err
	}

	return b, nil
}

func (r *bankRepositoryImpl) ListActive(ctx context.Context) ([]bank.Bank, error) {
	query := `
		SELECT id, name, swift_code, deleted, created_at, updated_at
		FROM banks
		WHERE NOT deleted
		ORDER BY name ASC
	`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	defer rows.Close()

	var banks []bank.Bank
	for rows.Next() {
		var b bank.Bank
		if err := rows.Scan(&b.ID, &b.Name, &b.SwiftCode, &b.Deleted, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bank: %w", err)
		}
		banks = append(banks, b)
	}

	return banks, rows.Err()
}

func (r *bankRepositoryImpl) Update(ctx context.Context, b bank.Bank) error {
	query := `
		UPDATE banks
		SET name = $2, swift_code = $3, updated_at = NOW()
		WHERE id = $1 AND NOT deleted
	`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query, b.ID, b.Name, b.SwiftCode)
	if err != nil {
		return fmt.Errorf("failed to update bank: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *bankRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE banks
		SET deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT deleted
	`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete bank: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *bankRepositoryImpl) ExistsActiveByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM banks
			WHERE name = $1 AND id <> $2 AND NOT deleted
		)
	`

	var exists bool
	if err := GetQuerier(ctx, r.db).QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check bank name: %w", err)
	}

	return exists, nil
}

func (r *bankRepositoryImpl) ExistsActiveBySwiftCode(ctx context.Context, swiftCode string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM banks
			WHERE swift_code = $1 AND id <> $2 AND NOT deleted
		)
	`

	var exists bool
	if err := GetQuerier(ctx, r.db).QueryRow(ctx, query, swiftCode, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check bank swift code: %w", err)
	}

	return exists, nil
}

func (r *bankRepositoryImpl) ExistsActiveByID(ctx context.Context, id int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM banks
			WHERE id = $1 AND NOT deleted
		)
	`

	var exists bool
	if err := GetQuerier(ctx, r.db).QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check bank id: %w", err)
	}

	return exists, nil
}
