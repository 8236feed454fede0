package postgresql

import (
	"context"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/department"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db  *database.DB
	ref refTable
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db, ref: refTable{table: "departments"}}
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, e department.Department) (department.Department, error) {
	row, err := r.ref.insert(ctx, GetQuerier(ctx, r.db), e.Name)
	if err != nil {
		return department.Department{}, err
	}
	return toDepartment(row), nil
}

func (r *departmentRepositoryImpl) GetActiveByID(ctx context.Context, id int64) (department.Department, error) {
	row, err := r.ref.getActive(ctx, GetQuerier(ctx, r.db), id)
	if err != nil {
		return department.Department{}, err
	}
	return toDepartment(row), nil
}

func (r *departmentRepositoryImpl) ListActive(ctx context.Context) ([]department.Department, error) {
	rows, err := r.ref.listActive(ctx, GetQuerier(ctx, r.db))
	if err != nil {
		return nil, err
	}
	result := make([]department.Department, 0, len(rows))
	for _, row := range rows {
		result = append(result, toDepartment(row))
	}
	return result, nil
}

func (r *departmentRepositoryImpl) Update(ctx context.Context, e department.Department) error {
	return r.ref.updateName(ctx, GetQuerier(ctx, r.db), e.ID, e.Name)
}

func (r *departmentRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	return r.ref.softDelete(ctx, GetQuerier(ctx, r.db), id)
}

func (r *departmentRepositoryImpl) ExistsActiveByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	return r.ref.existsActiveName(ctx, GetQuerier(ctx, r.db), name, excludeID)
}

func (r *departmentRepositoryImpl) ExistsActiveByID(ctx context.Context, id int64) (bool, error) {
	return r.ref.existsActiveID(ctx, GetQuerier(ctx, r.db), id)
}

func toDepartment(row refRow) department.Department {
	return department.Department{
		ID:        row.ID,
		Name:      row.Name,
		Deleted:   row.Deleted,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
