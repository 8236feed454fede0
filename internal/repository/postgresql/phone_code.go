package postgresql

import (
	"context"
	"fmt"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/phonecode"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type phoneCodeRepositoryImpl struct {
	db *database.DB
}

func NewPhoneCountryCodeRepository(db *database.DB) phonecode.PhoneCountryCodeRepository {
	return &phoneCodeRepositoryImpl{db: db}
}

func (r *phoneCodeRepositoryImpl) Create(ctx context.Context, c phonecode.PhoneCountryCode) (phonecode.PhoneCountryCode, error) {
	query := `
		INSERT INTO phone_country_codes (country, code, deleted, created_at, updated_at)
		VALUES ($1, $2, FALSE, NOW(), NOW())
		RETURNING id, country, code, deleted, created_at, updated_at
	`

	var created phonecode.PhoneCountryCode
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, c.Country, c.Code).Scan(
		&created.ID,
		&created.Country,
		&created.Code,
		&created.Deleted,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return phonecode.PhoneCountryCode{}, fmt.Errorf("failed to insert country code: %w", err)
	}

	return created, nil
}

func (r *phoneCodeRepositoryImpl) GetActiveByID(ctx context.Context, id int64) (phonecode.PhoneCountryCode, error) {
	query := `
		SELECT id, country, code, deleted, created_at, updated_at
		FROM phone_country_codes
		WHERE id = $1 AND NOT deleted
	`

	var c phonecode.PhoneCountryCode
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Country,
		&c.Code,
		&c.Deleted,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return phonecode.PhoneCountryCode{}, err
	}

	return c, nil
}

func (r *phoneCodeRepositoryImpl) ListActive(ctx context.Context) ([]phonecode.PhoneCountryCode, error) {
	query := `
		SELECT id, country, code, deleted, created_at, updated_at
		FROM phone_country_codes
		WHERE NOT deleted
		ORDER BY country ASC
	`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list country codes: %w", err)
	}
	defer rows.Close()

	var codes []phonecode.PhoneCountryCode
	for rows.Next() {
		var c phonecode.PhoneCountryCode
		if err := rows.Scan(&c.ID, &c.Country, &c.Code, &c.Deleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan country code: %w", err)
		}
		codes = append(codes, c)
	}

	return codes, rows.Err()
}

func (r *phoneCodeRepositoryImpl) Update(ctx context.Context, c phonecode.PhoneCountryCode) error {
	query := `
		UPDATE phone_country_codes
		SET country = $2, code = $3, updated_at = NOW()
		WHERE id = $1 AND NOT deleted
	`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query, c.ID, c.Country, c.Code)
	if err != nil {
		return fmt.Errorf("failed to update country code: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *phoneCodeRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE phone_country_codes
		SET deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT deleted
	`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete country code: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *phoneCodeRepositoryImpl) ExistsActiveByCode(ctx context.Context, code string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM phone_country_codes
			WHERE code = $1 AND id <> $2 AND NOT deleted
		)
	`

	var exists bool
	if err := GetQuerier(ctx, r.db).QueryRow(ctx, query, code, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check country code: %w", err)
	}

	return exists, nil
}

func (r *phoneCodeRepositoryImpl) ExistsActiveByID(ctx context.Context, id int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM phone_country_codes
			WHERE id = $1 AND NOT deleted
		)
	`

	var exists bool
	if err := GetQuerier(ctx, r.db).QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check country code id: %w", err)
	}

	return exists, nil
}
