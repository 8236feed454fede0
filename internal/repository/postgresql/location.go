package postgresql

import (
	"context"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/location"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/database"
)

type locationRepositoryImpl struct {
	db  *database.DB
	ref refTable
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepositoryImpl{db: db, ref: refTable{table: "locations"}}
}

func (r *locationRepositoryImpl) Create(ctx context.Context, e location.Location) (location.Location, error) {
	row, err := r.ref.insert(ctx, GetQuerier(ctx, r.db), e.Name)
	if err != nil {
		return location.Location{}, err
	}
	return toLocation(row), nil
}

func (r *locationRepositoryImpl) GetActiveByID(ctx context.Context, id int64) (location.Location, error) {
	row, err := r.ref.getActive(ctx, GetQuerier(ctx, r.db), id)
	if err != nil {
		return location.Location{}, err
	}
	return toLocation(row), nil
}

func (r *locationRepositoryImpl) ListActive(ctx context.Context) ([]location.Location, error) {
	rows, err := r.ref.listActive(ctx, GetQuerier(ctx, r.db))
	if err != nil {
		return nil, err
	}
	result := make([]location.Location, 0, len(rows))
	for _, row := range rows {
		result = append(result, toLocation(row))
	}
	return result, nil
}

func (r *locationRepositoryImpl) Update(ctx context.Context, e location.Location) error {
	return r.ref.updateName(ctx, GetQuerier(ctx, r.db), e.ID, e.Name)
}

func (r *locationRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	return r.ref.softDelete(ctx, GetQuerier(ctx, r.db), id)
}

func (r *locationRepositoryImpl) ExistsActiveByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	return r.ref.existsActiveName(ctx, GetQuerier(ctx, r.db), name, excludeID)
}

func (r *locationRepositoryImpl) ExistsActiveByID(ctx context.Context, id int64) (bool, error) {
	return r.ref.existsActiveID(ctx, GetQuerier(ctx, r.db), id)
}

func toLocation(row refRow) location.Location {
	return location.Location{
		ID:        row.ID,
		Name:      row.Name,
		Deleted:   row.Deleted,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
