package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/bank"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
	"github.com/emiratehr/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

// validateBankPayload runs the full payload validation in one pass, collecting
// every field failure before reporting. excludeID keeps the row being updated
// out of the uniqueness checks.
func (s *masterServiceImpl) validateBankPayload(ctx context.Context, payload bank.BankPayload, excludeID int64) (validator.ValidationErrors, error) {
	errs := payload.Validate()

	if payload.Name != nil && !validator.IsEmpty(*payload.Name) {
		exists, err := s.bankRepo.ExistsActiveByName(ctx, *payload.Name, excludeID)
		if err != nil {
			return nil, fmt.Errorf("failed to check bank name: %w", err)
		}
		if exists {
			errs = errs.Add("bank_name", "Bank name already exists.")
		}
	}

	if payload.SwiftCode != nil && !validator.IsEmpty(*payload.SwiftCode) {
		exists, err := s.bankRepo.ExistsActiveBySwiftCode(ctx, *payload.SwiftCode, excludeID)
		if err != nil {
			return nil, fmt.Errorf("failed to check bank swift code: %w", err)
		}
		if exists {
			errs = errs.Add("swift_code", "Swift code already exists.")
		}
	}

	return errs, nil
}

func (s *masterServiceImpl) CreateBank(ctx context.Context, payload bank.BankPayload) (bank.BankResponse, error) {
	errs, err := s.validateBankPayload(ctx, payload, 0)
	if err != nil {
		return bank.BankResponse{}, err
	}
	if len(errs) > 0 {
		return bank.BankResponse{}, errs
	}

	entity := bank.Bank{Name: *payload.Name}
	if payload.SwiftCode != nil && !validator.IsEmpty(*payload.SwiftCode) {
		entity.SwiftCode = payload.SwiftCode
	}

	created, err := s.bankRepo.Create(ctx, entity)
	if err != nil {
		if constraint, ok := postgresql.UniqueViolation(err); ok {
			return bank.BankResponse{}, bankUniqueError(constraint)
		}
		return bank.BankResponse{}, fmt.Errorf("failed to create bank: %w", err)
	}

	return toBankResponse(created), nil
}

func (s *masterServiceImpl) GetBank(ctx context.Context, id int64) (bank.BankResponse, error) {
	entity, err := s.bankRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bank.BankResponse{}, bank.ErrBankNotFound
		}
		return bank.BankResponse{}, err
	}

	return toBankResponse(entity), nil
}

func (s *masterServiceImpl) ListBanks(ctx context.Context) ([]bank.BankResponse, error) {
	entities, err := s.bankRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]bank.BankResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, toBankResponse(entity))
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdateBank(ctx context.Context, id int64, payload bank.BankPayload) (bank.BankResponse, error) {
	entity, err := s.bankRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bank.BankResponse{}, bank.ErrBankNotFound
		}
		return bank.BankResponse{}, err
	}

	errs, err := s.validateBankPayload(ctx, payload, id)
	if err != nil {
		return bank.BankResponse{}, err
	}
	if len(errs) > 0 {
		return bank.BankResponse{}, errs
	}

	// Merge semantics: only fields present in the payload overwrite the row.
	entity.Name = *payload.Name
	if payload.SwiftCode != nil && !validator.IsEmpty(*payload.SwiftCode) {
		entity.SwiftCode = payload.SwiftCode
	}

	if err := s.bankRepo.Update(ctx, entity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bank.BankResponse{}, bank.ErrBankNotFound
		}
		if constraint, ok := postgresql.UniqueViolation(err); ok {
			return bank.BankResponse{}, bankUniqueError(constraint)
		}
		return bank.BankResponse{}, fmt.Errorf("failed to update bank: %w", err)
	}

	updated, err := s.bankRepo.GetActiveByID(ctx, id)
	if err != nil {
		return bank.BankResponse{}, err
	}

	return toBankResponse(updated), nil
}

func (s *masterServiceImpl) DeleteBank(ctx context.Context, id int64) error {
	if err := s.bankRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bank.ErrBankNotFound
		}
		return fmt.Errorf("failed to delete bank: %w", err)
	}

	return nil
}

// bankUniqueError maps a storage-level unique violation onto the same field
// error the pre-check would have produced.
func bankUniqueError(constraint string) validator.ValidationErrors {
	if constraint == "uq_banks_swift_code_active" {
		return validator.ValidationErrors{}.Add("swift_code", "Swift code already exists.")
	}
	return validator.ValidationErrors{}.Add("bank_name", "Bank name already exists.")
}

func toBankResponse(entity bank.Bank) bank.BankResponse {
	return bank.BankResponse{
		ID:        entity.ID,
		Name:      entity.Name,
		SwiftCode: entity.SwiftCode,
		CreatedAt: formatTime(entity.CreatedAt),
		UpdatedAt: formatTime(entity.UpdatedAt),
	}
}
