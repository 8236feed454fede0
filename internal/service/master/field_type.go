package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/fieldtype"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
	"github.com/emiratehr/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

func (s *masterServiceImpl) CreateFieldType(ctx context.Context, payload fieldtype.FieldTypePayload) (fieldtype.FieldTypeResponse, error) {
	errs := payload.Validate()

	if payload.Name != nil && !validator.IsEmpty(*payload.Name) {
		exists, err := s.fieldTypeRepo.ExistsActiveByName(ctx, *payload.Name, 0)
		if err != nil {
			return fieldtype.FieldTypeResponse{}, fmt.Errorf("failed to check field type name: %w", err)
		}
		if exists {
			errs = errs.Add("field_type_name", "Field type name already exists.")
		}
	}
	if len(errs) > 0 {
		return fieldtype.FieldTypeResponse{}, errs
	}

	created, err := s.fieldTypeRepo.Create(ctx, fieldtype.FieldType{Name: *payload.Name})
	if err != nil {
		if _, ok := postgresql.UniqueViolation(err); ok {
			return fieldtype.FieldTypeResponse{}, validator.ValidationErrors{}.Add("field_type_name", "Field type name already exists.")
		}
		return fieldtype.FieldTypeResponse{}, fmt.Errorf("failed to create field type: %w", err)
	}

	return toFieldTypeResponse(created), nil
}

func (s *masterServiceImpl) GetFieldType(ctx context.Context, id int64) (fieldtype.FieldTypeResponse, error) {
	entity, err := s.fieldTypeRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fieldtype.FieldTypeResponse{}, fieldtype.ErrFieldTypeNotFound
		}
		return fieldtype.FieldTypeResponse{}, err
	}

	return toFieldTypeResponse(entity), nil
}

func (s *masterServiceImpl) ListFieldTypes(ctx context.Context) ([]fieldtype.FieldTypeResponse, error) {
	entities, err := s.fieldTypeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]fieldtype.FieldTypeResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, toFieldTypeResponse(entity))
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdateFieldType(ctx context.Context, id int64, payload fieldtype.FieldTypePayload) (fieldtype.FieldTypeResponse, error) {
	entity, err := s.fieldTypeRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fieldtype.FieldTypeResponse{}, fieldtype.ErrFieldTypeNotFound
		}
		return fieldtype.FieldTypeResponse{}, err
	}

	errs := payload.Validate()

	if payload.Name != nil && !validator.IsEmpty(*payload.Name) {
		exists, err := s.fieldTypeRepo.ExistsActiveByName(ctx, *payload.Name, id)
		if err != nil {
			return fieldtype.FieldTypeResponse{}, fmt.Errorf("failed to check field type name: %w", err)
		}
		if exists {
			errs = errs.Add("field_type_name", "Field type name already exists.")
		}
	}
	if len(errs) > 0 {
		return fieldtype.FieldTypeResponse{}, errs
	}

	entity.Name = *payload.Name

	if err := s.fieldTypeRepo.Update(ctx, entity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fieldtype.FieldTypeResponse{}, fieldtype.ErrFieldTypeNotFound
		}
		if _, ok := postgresql.UniqueViolation(err); ok {
			return fieldtype.FieldTypeResponse{}, validator.ValidationErrors{}.Add("field_type_name", "Field type name already exists.")
		}
		return fieldtype.FieldTypeResponse{}, fmt.Errorf("failed to update field type: %w", err)
	}

	updated, err := s.fieldTypeRepo.GetActiveByID(ctx, id)
	if err != nil {
		return fieldtype.FieldTypeResponse{}, err
	}

	return toFieldTypeResponse(updated), nil
}

func (s *masterServiceImpl) DeleteFieldType(ctx context.Context, id int64) error {
	if err := s.fieldTypeRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fieldtype.ErrFieldTypeNotFound
		}
		return fmt.Errorf("failed to delete field type: %w", err)
	}

	return nil
}

func toFieldTypeResponse(entity fieldtype.FieldType) fieldtype.FieldTypeResponse {
	return fieldtype.FieldTypeResponse{
		ID:        entity.ID,
		Name:      entity.Name,
		CreatedAt: formatTime(entity.CreatedAt),
		UpdatedAt: formatTime(entity.UpdatedAt),
	}
}
