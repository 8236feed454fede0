package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/department"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
	"github.com/emiratehr/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, payload department.DepartmentPayload) (department.DepartmentResponse, error) {
	errs := payload.Validate()

	if payload.Name != nil && !validator.IsEmpty(*payload.Name) {
		exists, err := s.departmentRepo.ExistsActiveByName(ctx, *payload.Name, 0)
		if err != nil {
			return department.DepartmentResponse{}, fmt.Errorf("failed to check department name: %w", err)
		}
		if exists {
			errs = errs.Add("department_name", "Department name already exists.")
		}
	}
	if len(errs) > 0 {
		return department.DepartmentResponse{}, errs
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{Name: *payload.Name})
	if err != nil {
		if _, ok := postgresql.UniqueViolation(err); ok {
			return department.DepartmentResponse{}, validator.ValidationErrors{}.Add("department_name", "Department name already exists.")
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return toDepartmentResponse(created), nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id int64) (department.DepartmentResponse, error) {
	entity, err := s.departmentRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.DepartmentResponse{}, department.ErrDepartmentNotFound
		}
		return department.DepartmentResponse{}, err
	}

	return toDepartmentResponse(entity), nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	entities, err := s.departmentRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, toDepartmentResponse(entity))
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, id int64, payload department.DepartmentPayload) (department.DepartmentResponse, error) {
	entity, err := s.departmentRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.DepartmentResponse{}, department.ErrDepartmentNotFound
		}
		return department.DepartmentResponse{}, err
	}

	errs := payload.Validate()

	if payload.Name != nil && !validator.IsEmpty(*payload.Name) {
		exists, err := s.departmentRepo.ExistsActiveByName(ctx, *payload.Name, id)
		if err != nil {
			return department.DepartmentResponse{}, fmt.Errorf("failed to check department name: %w", err)
		}
		if exists {
			errs = errs.Add("department_name", "Department name already exists.")
		}
	}
	if len(errs) > 0 {
		return department.DepartmentResponse{}, errs
	}

	entity.Name = *payload.Name

	if err := s.departmentRepo.Update(ctx, entity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.DepartmentResponse{}, department.ErrDepartmentNotFound
		}
		if _, ok := postgresql.UniqueViolation(err); ok {
			return department.DepartmentResponse{}, validator.ValidationErrors{}.Add("department_name", "Department name already exists.")
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to update department: %w", err)
	}

	updated, err := s.departmentRepo.GetActiveByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return toDepartmentResponse(updated), nil
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id int64) error {
	if err := s.departmentRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}

	return nil
}

func toDepartmentResponse(entity department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:        entity.ID,
		Name:      entity.Name,
		CreatedAt: formatTime(entity.CreatedAt),
		UpdatedAt: formatTime(entity.UpdatedAt),
	}
}
