package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/location"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
	"github.com/emiratehr/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

func (s *masterServiceImpl) CreateLocation(ctx context.Context, payload location.LocationPayload) (location.LocationResponse, error) {
	errs := payload.Validate()

	if payload.Name != nil && !validator.IsEmpty(*payload.Name) {
		exists, err := s.locationRepo.ExistsActiveByName(ctx, *payload.Name, 0)
		if err != nil {
			return location.LocationResponse{}, fmt.Errorf("failed to check location name: %w", err)
		}
		if exists {
			errs = errs.Add("location_name", "Location name already exists.")
		}
	}
	if len(errs) > 0 {
		return location.LocationResponse{}, errs
	}

	created, err := s.locationRepo.Create(ctx, location.Location{Name: *payload.Name})
	if err != nil {
		if _, ok := postgresql.UniqueViolation(err); ok {
			return location.LocationResponse{}, validator.ValidationErrors{}.Add("location_name", "Location name already exists.")
		}
		return location.LocationResponse{}, fmt.Errorf("failed to create location: %w", err)
	}

	return toLocationResponse(created), nil
}

func (s *masterServiceImpl) GetLocation(ctx context.Context, id int64) (location.LocationResponse, error) {
	entity, err := s.locationRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.LocationResponse{}, location.ErrLocationNotFound
		}
		return location.LocationResponse{}, err
	}

	return toLocationResponse(entity), nil
}

func (s *masterServiceImpl) ListLocations(ctx context.Context) ([]location.LocationResponse, error) {
	entities, err := s.locationRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]location.LocationResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, toLocationResponse(entity))
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdateLocation(ctx context.Context, id int64, payload location.LocationPayload) (location.LocationResponse, error) {
	entity, err := s.locationRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.LocationResponse{}, location.ErrLocationNotFound
		}
		return location.LocationResponse{}, err
	}

	errs := payload.Validate()

	if payload.Name != nil && !validator.IsEmpty(*payload.Name) {
		exists, err := s.locationRepo.ExistsActiveByName(ctx, *payload.Name, id)
		if err != nil {
			return location.LocationResponse{}, fmt.Errorf("failed to check location name: %w", err)
		}
		if exists {
			errs = errs.Add("location_name", "Location name already exists.")
		}
	}
	if len(errs) > 0 {
		return location.LocationResponse{}, errs
	}

	entity.Name = *payload.Name

	if err := s.locationRepo.Update(ctx, entity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.LocationResponse{}, location.ErrLocationNotFound
		}
		if _, ok := postgresql.UniqueViolation(err); ok {
			return location.LocationResponse{}, validator.ValidationErrors{}.Add("location_name", "Location name already exists.")
		}
		return location.LocationResponse{}, fmt.Errorf("failed to update location: %w", err)
	}

	updated, err := s.locationRepo.GetActiveByID(ctx, id)
	if err != nil {
		return location.LocationResponse{}, err
	}

	return toLocationResponse(updated), nil
}

func (s *masterServiceImpl) DeleteLocation(ctx context.Context, id int64) error {
	if err := s.locationRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.ErrLocationNotFound
		}
		return fmt.Errorf("failed to delete location: %w", err)
	}

	return nil
}

func toLocationResponse(entity location.Location) location.LocationResponse {
	return location.LocationResponse{
		ID:        entity.ID,
		Name:      entity.Name,
		CreatedAt: formatTime(entity.CreatedAt),
		UpdatedAt: formatTime(entity.UpdatedAt),
	}
}
