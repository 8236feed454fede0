package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/emiratehr/payroll-backend-go/internal/domain/employee"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, user_id, first_name, last_name, phone_number, phone_country_code_id,
	emirates_id, passport_number, labour_card_number, mohre_establishment_id,
	visa_expiry, contract_type_id, contract_start_date, contract_end_date,
	department_id, designation_id, location_id, bank_id, job_title_id,
	iban, custom_fields, deleted, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.FirstName,
		&e.LastName,
		&e.PhoneNumber,
		&e.PhoneCountryCodeID,
		&e.EmiratesID,
		&e.PassportNumber,
		&e.LabourCardNumber,
		&e.MOHREEstablishmentID,
		&e.VisaExpiry,
		&e.ContractTypeID,
		&e.ContractStartDate,
		&e.ContractEndDate,
		&e.DepartmentID,
		&e.DesignationID,
		&e.LocationID,
		&e.BankID,
		&e.JobTitleID,
		&e.IBAN,
		&e.CustomFields,
		&e.Deleted,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (
			user_id, first_name, last_name, phone_number, phone_country_code_id,
			emirates_id, passport_number, labour_card_number, mohre_establishment_id,
			visa_expiry, contract_type_id, contract_start_date, contract_end_date,
			department_id, designation_id, location_id, bank_id, job_title_id,
			iban, custom_fields, deleted, created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, FALSE, NOW(), NOW()
		)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(GetQuerier(ctx, r.db).QueryRow(ctx, query,
		e.UserID, e.FirstName, e.LastName, e.PhoneNumber, e.PhoneCountryCodeID,
		e.EmiratesID, e.PassportNumber, e.LabourCardNumber, e.MOHREEstablishmentID,
		e.VisaExpiry, e.ContractTypeID, e.ContractStartDate, e.ContractEndDate,
		e.DepartmentID, e.DesignationID, e.LocationID, e.BankID, e.JobTitleID,
		e.IBAN, e.CustomFields,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepositoryImpl) GetActiveByID(ctx context.Context, id int64) (employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND NOT deleted
	`

	return scanEmployee(GetQuerier(ctx, r.db).QueryRow(ctx, query, id))
}

func (r *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE NOT deleted
		ORDER BY id ASC
	`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	query := `
		UPDATE employees SET
			first_name = $2, last_name = $3, phone_number = $4, phone_country_code_id = $5,
			emirates_id = $6, passport_number = $7, labour_card_number = $8,
			mohre_establishment_id = $9, visa_expiry = $10, contract_type_id = $11,
			contract_start_date = $12, contract_end_date = $13, department_id = $14,
			designation_id = $15, location_id = $16, bank_id = $17, job_title_id = $18,
			iban = $19, custom_fields = $20, updated_at = NOW()
		WHERE id = $1 AND NOT deleted
	`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query,
		e.ID, e.FirstName, e.LastName, e.PhoneNumber, e.PhoneCountryCodeID,
		e.EmiratesID, e.PassportNumber, e.LabourCardNumber, e.MOHREEstablishmentID,
		e.VisaExpiry, e.ContractTypeID, e.ContractStartDate, e.ContractEndDate,
		e.DepartmentID, e.DesignationID, e.LocationID, e.BankID, e.JobTitleID,
		e.IBAN, e.CustomFields,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE employees
		SET deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT deleted
	`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *employeeRepositoryImpl) ListVisaExpiring(ctx context.Context, from, to time.Time) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE NOT deleted
			AND visa_expiry IS NOT NULL
			AND visa_expiry >= $1 AND visa_expiry <= $2
		ORDER BY visa_expiry ASC
	`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring visas: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}
