package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/contracttype"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
	"github.com/emiratehr/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

func (s *masterServiceImpl) CreateContractType(ctx context.Context, payload contracttype.ContractTypePayload) (contracttype.ContractTypeResponse, error) {
	errs := payload.Validate()

	if payload.Name != nil && !validator.IsEmpty(*payload.Name) {
		exists, err := s.contractTypeRepo.ExistsActiveByName(ctx, *payload.Name, 0)
		if err != nil {
			return contracttype.ContractTypeResponse{}, fmt.Errorf("failed to check contract type name: %w", err)
		}
		if exists {
			errs = errs.Add("contract_type_name", "Contract type name already exists.")
		}
	}
	if len(errs) > 0 {
		return contracttype.ContractTypeResponse{}, errs
	}

	created, err := s.contractTypeRepo.Create(ctx, contracttype.ContractType{Name: *payload.Name})
	if err != nil {
		if _, ok := postgresql.UniqueViolation(err); ok {
			return contracttype.ContractTypeResponse{}, validator.ValidationErrors{}.Add("contract_type_name", "Contract type name already exists.")
		}
		return contracttype.ContractTypeResponse{}, fmt.Errorf("failed to create contract type: %w", err)
	}

	return toContractTypeResponse(created), nil
}

func (s *masterServiceImpl) GetContractType(ctx context.Context, id int64) (contracttype.ContractTypeResponse, error) {
	entity, err := s.contractTypeRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contracttype.ContractTypeResponse{}, contracttype.ErrContractTypeNotFound
		}
		return contracttype.ContractTypeResponse{}, err
	}

	return toContractTypeResponse(entity), nil
}

func (s *masterServiceImpl) ListContractTypes(ctx context.Context) ([]contracttype.ContractTypeResponse, error) {
	entities, err := s.contractTypeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]contracttype.ContractTypeResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, toContractTypeResponse(entity))
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdateContractType(ctx context.Context, id int64, payload contracttype.ContractTypePayload) (contracttype.ContractTypeResponse, error) {
	entity, err := s.contractTypeRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contracttype.ContractTypeResponse{}, contracttype.ErrContractTypeNotFound
		}
		return contracttype.ContractTypeResponse{}, err
	}

	errs := payload.Validate()

	if payload.Name != nil && !validator.IsEmpty(*payload.Name) {
		exists, err := s.contractTypeRepo.ExistsActiveByName(ctx, *payload.Name, id)
		if err != nil {
			return contracttype.ContractTypeResponse{}, fmt.Errorf("failed to check contract type name: %w", err)
		}
		if exists {
			errs = errs.Add("contract_type_name", "Contract type name already exists.")
		}
	}
	if len(errs) > 0 {
		return contracttype.ContractTypeResponse{}, errs
	}

	entity.Name = *payload.Name

	if err := s.contractTypeRepo.Update(ctx, entity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contracttype.ContractTypeResponse{}, contracttype.ErrContractTypeNotFound
		}
		if _, ok := postgresql.UniqueViolation(err); ok {
			return contracttype.ContractTypeResponse{}, validator.ValidationErrors{}.Add("contract_type_name", "Contract type name already exists.")
		}
		return contracttype.ContractTypeResponse{}, fmt.Errorf("failed to update contract type: %w", err)
	}

	updated, err := s.contractTypeRepo.GetActiveByID(ctx, id)
	if err != nil {
		return contracttype.ContractTypeResponse{}, err
	}

	return toContractTypeResponse(updated), nil
}

func (s *masterServiceImpl) DeleteContractType(ctx context.Context, id int64) error {
	if err := s.contractTypeRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contracttype.ErrContractTypeNotFound
		}
		return fmt.Errorf("failed to delete contract type: %w", err)
	}

	return nil
}

func toContractTypeResponse(entity contracttype.ContractType) contracttype.ContractTypeResponse {
	return contracttype.ContractTypeResponse{
		ID:        entity.ID,
		Name:      entity.Name,
		CreatedAt: formatTime(entity.CreatedAt),
		UpdatedAt: formatTime(entity.UpdatedAt),
	}
}
