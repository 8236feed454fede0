package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/jobtitle"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/validator"
	"github.com/emiratehr/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

func (s *masterServiceImpl) CreateJobTitle(ctx context.Context, payload jobtitle.JobTitlePayload) (jobtitle.JobTitleResponse, error) {
	errs := payload.Validate()

	if payload.Name != nil && !validator.IsEmpty(*payload.Name) {
		exists, err := s.jobTitleRepo.ExistsActiveByName(ctx, *payload.Name, 0)
		if err != nil {
			return jobtitle.JobTitleResponse{}, fmt.Errorf("failed to check job title name: %w", err)
		}
		if exists {
			errs = errs.Add("job_title_name", "Job title name already exists.")
		}
	}
	if len(errs) > 0 {
		return jobtitle.JobTitleResponse{}, errs
	}

	created, err := s.jobTitleRepo.Create(ctx, jobtitle.JobTitle{Name: *payload.Name})
	if err != nil {
		if _, ok := postgresql.UniqueViolation(err); ok {
			return jobtitle.JobTitleResponse{}, validator.ValidationErrors{}.Add("job_title_name", "Job title name already exists.")
		}
		return jobtitle.JobTitleResponse{}, fmt.Errorf("failed to create job title: %w", err)
	}

	return toJobTitleResponse(created), nil
}

func (s *masterServiceImpl) GetJobTitle(ctx context.Context, id int64) (jobtitle.JobTitleResponse, error) {
	entity, err := s.jobTitleRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jobtitle.JobTitleResponse{}, jobtitle.ErrJobTitleNotFound
		}
		return jobtitle.JobTitleResponse{}, err
	}

	return toJobTitleResponse(entity), nil
}

func (s *masterServiceImpl) ListJobTitles(ctx context.Context) ([]jobtitle.JobTitleResponse, error) {
	entities, err := s.jobTitleRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]jobtitle.JobTitleResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, toJobTitleResponse(entity))
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdateJobTitle(ctx context.Context, id int64, payload jobtitle.JobTitlePayload) (jobtitle.JobTitleResponse, error) {
	entity, err := s.jobTitleRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jobtitle.JobTitleResponse{}, jobtitle.ErrJobTitleNotFound
		}
		return jobtitle.JobTitleResponse{}, err
	}

	errs := payload.Validate()

	if payload.Name != nil && !validator.IsEmpty(*payload.Name) {
		exists, err := s.jobTitleRepo.ExistsActiveByName(ctx, *payload.Name, id)
		if err != nil {
			return jobtitle.JobTitleResponse{}, fmt.Errorf("failed to check job title name: %w", err)
		}
		if exists {
			errs = errs.Add("job_title_name", "Job title name already exists.")
		}
	}
	if len(errs) > 0 {
		return jobtitle.JobTitleResponse{}, errs
	}

	entity.Name = *payload.Name

	if err := s.jobTitleRepo.Update(ctx, entity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jobtitle.JobTitleResponse{}, jobtitle.ErrJobTitleNotFound
		}
		if _, ok := postgresql.UniqueViolation(err); ok {
			return jobtitle.JobTitleResponse{}, validator.ValidationErrors{}.Add("job_title_name", "Job title name already exists.")
		}
		return jobtitle.JobTitleResponse{}, fmt.Errorf("failed to update job title: %w", err)
	}

	updated, err := s.jobTitleRepo.GetActiveByID(ctx, id)
	if err != nil {
		return jobtitle.JobTitleResponse{}, err
	}

	return toJobTitleResponse(updated), nil
}

func (s *masterServiceImpl) DeleteJobTitle(ctx context.Context, id int64) error {
	if err := s.jobTitleRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jobtitle.ErrJobTitleNotFound
		}
		return fmt.Errorf("failed to delete job title: %w", err)
	}

	return nil
}

func toJobTitleResponse(entity jobtitle.JobTitle) jobtitle.JobTitleResponse {
	return jobtitle.JobTitleResponse{
		ID:        entity.ID,
		Name:      entity.Name,
		CreatedAt: formatTime(entity.CreatedAt),
		UpdatedAt: formatTime(entity.UpdatedAt),
	}
}
