package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/designation"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
	"github.com/emiratehr/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

func (s *masterServiceImpl) validateDesignationPayload(ctx context.Context, payload designation.DesignationPayload, excludeID int64) (validator.ValidationErrors, error) {
	errs := payload.Validate()

	if payload.Name != nil && !validator.IsEmpty(*payload.Name) {
		exists, err := s.designationRepo.ExistsActiveByName(ctx, *payload.Name, excludeID)
		if err != nil {
			return nil, fmt.Errorf("failed to check designation name: %w", err)
		}
		if exists {
			errs = errs.Add("designation_name", "Designation name already exists.")
		}
	}

	if payload.DepartmentID != nil {
		exists, err := s.departmentRepo.ExistsActiveByID(ctx, *payload.DepartmentID)
		if err != nil {
			return nil, fmt.Errorf("failed to check department: %w", err)
		}
		if !exists {
			errs = errs.Add("department", fmt.Sprintf("Department with id %d does not exist.", *payload.DepartmentID))
		}
	}

	return errs, nil
}

func (s *masterServiceImpl) CreateDesignation(ctx context.Context, payload designation.DesignationPayload) (designation.DesignationResponse, error) {
	errs, err := s.validateDesignationPayload(ctx, payload, 0)
	if err != nil {
		return designation.DesignationResponse{}, err
	}
	if len(errs) > 0 {
		return designation.DesignationResponse{}, errs
	}

	entity := designation.Designation{
		Name:         *payload.Name,
		DepartmentID: payload.DepartmentID,
	}
	if payload.Description != nil {
		entity.Description = *payload.Description
	}

	created, err := s.designationRepo.Create(ctx, entity)
	if err != nil {
		if _, ok := postgresql.UniqueViolation(err); ok {
			return designation.DesignationResponse{}, validator.ValidationErrors{}.Add("designation_name", "Designation name already exists.")
		}
		return designation.DesignationResponse{}, fmt.Errorf("failed to create designation: %w", err)
	}

	return toDesignationResponse(created), nil
}

func (s *masterServiceImpl) GetDesignation(ctx context.Context, id int64) (designation.DesignationResponse, error) {
	entity, err := s.designationRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return designation.DesignationResponse{}, designation.ErrDesignationNotFound
		}
		return designation.DesignationResponse{}, err
	}

	return toDesignationResponse(entity), nil
}

func (s *masterServiceImpl) ListDesignations(ctx context.Context) ([]designation.DesignationResponse, error) {
	entities, err := s.designationRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]designation.DesignationResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, toDesignationResponse(entity))
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdateDesignation(ctx context.Context, id int64, payload designation.DesignationPayload) (designation.DesignationResponse, error) {
	entity, err := s.designationRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return designation.DesignationResponse{}, designation.ErrDesignationNotFound
		}
		return designation.DesignationResponse{}, err
	}

	errs, err := s.validateDesignationPayload(ctx, payload, id)
	if err != nil {
		return designation.DesignationResponse{}, err
	}
	if len(errs) > 0 {
		return designation.DesignationResponse{}, errs
	}

	entity.Name = *payload.Name
	if payload.Description != nil {
		entity.Description = *payload.Description
	}
	if payload.DepartmentID != nil {
		entity.DepartmentID = payload.DepartmentID
	}

	if err := s.designationRepo.Update(ctx, entity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return designation.DesignationResponse{}, designation.ErrDesignationNotFound
		}
		if _, ok := postgresql.UniqueViolation(err); ok {
			return designation.DesignationResponse{}, validator.ValidationErrors{}.Add("designation_name", "Designation name already exists.")
		}
		return designation.DesignationResponse{}, fmt.Errorf("failed to update designation: %w", err)
	}

	updated, err := s.designationRepo.GetActiveByID(ctx, id)
	if err != nil {
		return designation.DesignationResponse{}, err
	}

	return toDesignationResponse(updated), nil
}

func (s *masterServiceImpl) DeleteDesignation(ctx context.Context, id int64) error {
	if err := s.designationRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return designation.ErrDesignationNotFound
		}
		return fmt.Errorf("failed to delete designation: %w", err)
	}

	return nil
}

func toDesignationResponse(entity designation.Designation) designation.DesignationResponse {
	return designation.DesignationResponse{
		ID:           entity.ID,
		Name:         entity.Name,
		Description:  entity.Description,
		DepartmentID: entity.DepartmentID,
		CreatedAt:    formatTime(entity.CreatedAt),
		UpdatedAt:    formatTime(entity.UpdatedAt),
	}
}
