package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/customfield"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
	"github.com/emiratehr/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

func (s *masterServiceImpl) validateCustomFieldPayload(ctx context.Context, payload customfield.CustomFieldPayload, excludeID int64) (validator.ValidationErrors, error) {
	errs := payload.Validate()

	if payload.FieldKey != nil && !validator.IsEmpty(*payload.FieldKey) {
		exists, err := s.customFieldRepo.ExistsActiveByFieldKey(ctx, *payload.FieldKey, excludeID)
		if err != nil {
			return nil, fmt.Errorf("failed to check custom field key: %w", err)
		}
		if exists {
			errs = errs.Add("field_key", "Field key already exists.")
		}
	}

	if payload.FieldTypeID != nil {
		exists, err := s.fieldTypeRepo.ExistsActiveByID(ctx, *payload.FieldTypeID)
		if err != nil {
			return nil, fmt.Errorf("failed to check field type: %w", err)
		}
		if !exists {
			errs = errs.Add("field_type", fmt.Sprintf("FieldType with id %d does not exist.", *payload.FieldTypeID))
		}
	}

	return errs, nil
}

func (s *masterServiceImpl) CreateCustomField(ctx context.Context, payload customfield.CustomFieldPayload) (customfield.CustomFieldResponse, error) {
	errs, err := s.validateCustomFieldPayload(ctx, payload, 0)
	if err != nil {
		return customfield.CustomFieldResponse{}, err
	}
	if len(errs) > 0 {
		return customfield.CustomFieldResponse{}, errs
	}

	entity := customfield.CustomFieldConfig{
		FieldKey:    *payload.FieldKey,
		FieldLabel:  *payload.FieldLabel,
		FieldTypeID: payload.FieldTypeID,
	}
	if payload.IsSelected != nil {
		entity.IsSelected = *payload.IsSelected
	}
	if payload.IsRequired != nil {
		entity.IsRequired = *payload.IsRequired
	}

	created, err := s.customFieldRepo.Create(ctx, entity)
	if err != nil {
		if _, ok := postgresql.UniqueViolation(err); ok {
			return customfield.CustomFieldResponse{}, validator.ValidationErrors{}.Add("field_key", "Field key already exists.")
		}
		return customfield.CustomFieldResponse{}, fmt.Errorf("failed to create custom field: %w", err)
	}

	return toCustomFieldResponse(customfield.CustomFieldWithType{CustomFieldConfig: created}), nil
}

func (s *masterServiceImpl) GetCustomField(ctx context.Context, id int64) (customfield.CustomFieldResponse, error) {
	entity, err := s.customFieldRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return customfield.CustomFieldResponse{}, customfield.ErrCustomFieldNotFound
		}
		return customfield.CustomFieldResponse{}, err
	}

	return toCustomFieldResponse(entity), nil
}

func (s *masterServiceImpl) ListCustomFields(ctx context.Context) ([]customfield.CustomFieldResponse, error) {
	entities, err := s.customFieldRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return toCustomFieldResponses(entities), nil
}

// ListSelectedCustomFields returns only the configurations flagged for
// display on the employee form.
func (s *masterServiceImpl) ListSelectedCustomFields(ctx context.Context) ([]customfield.CustomFieldResponse, error) {
	entities, err := s.customFieldRepo.ListSelected(ctx)
	if err != nil {
		return nil, err
	}

	return toCustomFieldResponses(entities), nil
}

func (s *masterServiceImpl) UpdateCustomField(ctx context.Context, id int64, payload customfield.CustomFieldPayload) (customfield.CustomFieldResponse, error) {
	existing, err := s.customFieldRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return customfield.CustomFieldResponse{}, customfield.ErrCustomFieldNotFound
		}
		return customfield.CustomFieldResponse{}, err
	}

	errs, err := s.validateCustomFieldPayload(ctx, payload, id)
	if err != nil {
		return customfield.CustomFieldResponse{}, err
	}
	if len(errs) > 0 {
		return customfield.CustomFieldResponse{}, errs
	}

	entity := existing.CustomFieldConfig
	entity.FieldKey = *payload.FieldKey
	entity.FieldLabel = *payload.FieldLabel
	if payload.FieldTypeID != nil {
		entity.FieldTypeID = payload.FieldTypeID
	}
	// The flags carry create's defaults on every write: absent means false.
	entity.IsSelected = payload.IsSelected != nil && *payload.IsSelected
	entity.IsRequired = payload.IsRequired != nil && *payload.IsRequired

	if err := s.customFieldRepo.Update(ctx, entity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return customfield.CustomFieldResponse{}, customfield.ErrCustomFieldNotFound
		}
		if _, ok := postgresql.UniqueViolation(err); ok {
			return customfield.CustomFieldResponse{}, validator.ValidationErrors{}.Add("field_key", "Field key already exists.")
		}
		return customfield.CustomFieldResponse{}, fmt.Errorf("failed to update custom field: %w", err)
	}

	updated, err := s.customFieldRepo.GetActiveByID(ctx, id)
	if err != nil {
		return customfield.CustomFieldResponse{}, err
	}

	return toCustomFieldResponse(updated), nil
}

func (s *masterServiceImpl) DeleteCustomField(ctx context.Context, id int64) error {
	if err := s.customFieldRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return customfield.ErrCustomFieldNotFound
		}
		return fmt.Errorf("failed to delete custom field: %w", err)
	}

	return nil
}

func toCustomFieldResponse(entity customfield.CustomFieldWithType) customfield.CustomFieldResponse {
	return customfield.CustomFieldResponse{
		ID:            entity.ID,
		FieldKey:      entity.FieldKey,
		FieldLabel:    entity.FieldLabel,
		FieldTypeID:   entity.FieldTypeID,
		FieldTypeName: entity.FieldTypeName,
		IsSelected:    entity.IsSelected,
		IsRequired:    entity.IsRequired,
		CreatedAt:     formatTime(entity.CreatedAt),
		UpdatedAt:     formatTime(entity.UpdatedAt),
	}
}

func toCustomFieldResponses(entities []customfield.CustomFieldWithType) []customfield.CustomFieldResponse {
	responses := make([]customfield.CustomFieldResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, toCustomFieldResponse(entity))
	}
	return responses
}
