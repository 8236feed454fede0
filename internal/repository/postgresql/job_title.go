package postgresql

import (
	"context"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/jobtitle"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/database"
)

type jobtitleRepositoryImpl struct {
	db  *database.DB
	ref refTable
}

func NewJobTitleRepository(db *database.DB) jobtitle.JobTitleRepository {
	return &jobtitleRepositoryImpl{db: db, ref: refTable{table: "job_titles"}}
}

func (r *jobtitleRepositoryImpl) Create(ctx context.Context, e jobtitle.JobTitle) (jobtitle.JobTitle, error) {
	row, err := r.ref.insert(ctx, GetQuerier(ctx, r.db), e.Name)
	if err != nil {
		return jobtitle.JobTitle{}, err
	}
	return toJobTitle(row), nil
}

func (r *jobtitleRepositoryImpl) GetActiveByID(ctx context.Context, id int64) (jobtitle.JobTitle, error) {
	row, err := r.ref.getActive(ctx, GetQuerier(ctx, r.db), id)
	if err != nil {
		return jobtitle.JobTitle{}, err
	}
	return toJobTitle(row), nil
}

func (r *jobtitleRepositoryImpl) ListActive(ctx context.Context) ([]jobtitle.JobTitle, error) {
	rows, err := r.ref.listActive(ctx, GetQuerier(ctx, r.db))
	if err != nil {
		return nil, err
	}
	result := make([]jobtitle.JobTitle, 0, len(rows))
	for _, row := range rows {
		result = append(result, toJobTitle(row))
	}
	return result, nil
}

func (r *jobtitleRepositoryImpl) Update(ctx context.Context, e jobtitle.JobTitle) error {
	return r.ref.updateName(ctx, GetQuerier(ctx, r.db), e.ID, e.Name)
}

func (r *jobtitleRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	return r.ref.softDelete(ctx, GetQuerier(ctx, r.db), id)
}

func (r *jobtitleRepositoryImpl) ExistsActiveByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	return r.ref.existsActiveName(ctx, GetQuerier(ctx, r.db), name, excludeID)
}

func (r *jobtitleRepositoryImpl) ExistsActiveByID(ctx context.Context, id int64) (bool, error) {
	return r.ref.existsActiveID(ctx, GetQuerier(ctx, r.db), id)
}

func toJobTitle(row refRow) jobtitle.JobTitle {
	return jobtitle.JobTitle{
		ID:        row.ID,
		Name:      row.Name,
		Deleted:   row.Deleted,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
