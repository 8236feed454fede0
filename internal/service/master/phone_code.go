package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/phonecode"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
	"github.com/emiratehr/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

func (s *masterServiceImpl) validateCountryCodePayload(ctx context.Context, payload phonecode.PhoneCountryCodePayload, excludeID int64) (validator.ValidationErrors, error) {
	errs := payload.Validate()

	if payload.Code != nil && !validator.IsEmpty(*payload.Code) {
		exists, err := s.phoneCodeRepo.ExistsActiveByCode(ctx, *payload.Code, excludeID)
		if err != nil {
			return nil, fmt.Errorf("failed to check country code: %w", err)
		}
		if exists {
			errs = errs.Add("code", "Country code already exists.")
		}
	}

	return errs, nil
}

func (s *masterServiceImpl) CreateCountryCode(ctx context.Context, payload phonecode.PhoneCountryCodePayload) (phonecode.PhoneCountryCodeResponse, error) {
	errs, err := s.validateCountryCodePayload(ctx, payload, 0)
	if err != nil {
		return phonecode.PhoneCountryCodeResponse{}, err
	}
	if len(errs) > 0 {
		return phonecode.PhoneCountryCodeResponse{}, errs
	}

	created, err := s.phoneCodeRepo.Create(ctx, phonecode.PhoneCountryCode{
		Country: *payload.Country,
		Code:    *payload.Code,
	})
	if err != nil {
		if _, ok := postgresql.UniqueViolation(err); ok {
			return phonecode.PhoneCountryCodeResponse{}, validator.ValidationErrors{}.Add("code", "Country code already exists.")
		}
		return phonecode.PhoneCountryCodeResponse{}, fmt.Errorf("failed to create country code: %w", err)
	}

	return toCountryCodeResponse(created), nil
}

func (s *masterServiceImpl) GetCountryCode(ctx context.Context, id int64) (phonecode.PhoneCountryCodeResponse, error) {
	entity, err := s.phoneCodeRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return phonecode.PhoneCountryCodeResponse{}, phonecode.ErrCountryCodeNotFound
		}
		return phonecode.PhoneCountryCodeResponse{}, err
	}

	return toCountryCodeResponse(entity), nil
}

func (s *masterServiceImpl) ListCountryCodes(ctx context.Context) ([]phonecode.PhoneCountryCodeResponse, error) {
	entities, err := s.phoneCodeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]phonecode.PhoneCountryCodeResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, toCountryCodeResponse(entity))
	}

	return responses, nil
}

// ListCountryCodeDropdown returns the trimmed id/value pairs that phone forms
// render as dialing-code options.
func (s *masterServiceImpl) ListCountryCodeDropdown(ctx context.Context) ([]phonecode.DropdownResponse, error) {
	entities, err := s.phoneCodeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]phonecode.DropdownResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, phonecode.DropdownResponse{
			ID:    entity.ID,
			Value: entity.Code,
		})
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdateCountryCode(ctx context.Context, id int64, payload phonecode.PhoneCountryCodePayload) (phonecode.PhoneCountryCodeResponse, error) {
	entity, err := s.phoneCodeRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return phonecode.PhoneCountryCodeResponse{}, phonecode.ErrCountryCodeNotFound
		}
		return phonecode.PhoneCountryCodeResponse{}, err
	}

	errs, err := s.validateCountryCodePayload(ctx, payload, id)
	if err != nil {
		return phonecode.PhoneCountryCodeResponse{}, err
	}
	if len(errs) > 0 {
		return phonecode.PhoneCountryCodeResponse{}, errs
	}

	entity.Country = *payload.Country
	entity.Code = *payload.Code

	if err := s.phoneCodeRepo.Update(ctx, entity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return phonecode.PhoneCountryCodeResponse{}, phonecode.ErrCountryCodeNotFound
		}
		if _, ok := postgresql.UniqueViolation(err); ok {
			return phonecode.PhoneCountryCodeResponse{}, validator.ValidationErrors{}.Add("code", "Country code already exists.")
		}
		return phonecode.PhoneCountryCodeResponse{}, fmt.Errorf("failed to update country code: %w", err)
	}

	return toCountryCodeResponse(entity), nil
}

func (s *masterServiceImpl) DeleteCountryCode(ctx context.Context, id int64) error {
	if err := s.phoneCodeRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return phonecode.ErrCountryCodeNotFound
		}
		return fmt.Errorf("failed to delete country code: %w", err)
	}

	return nil
}

func toCountryCodeResponse(entity phonecode.PhoneCountryCode) phonecode.PhoneCountryCodeResponse {
	return phonecode.PhoneCountryCodeResponse{
		ID:      entity.ID,
		Country: entity.Country,
		Code:    entity.Code,
	}
}
