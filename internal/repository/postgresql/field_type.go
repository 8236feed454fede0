package postgresql

import (
	"context"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/fieldtype"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/database"
)

type fieldtypeRepositoryImpl struct {
	db  *database.DB
	ref refTable
}

func NewFieldTypeRepository(db *database.DB) fieldtype.FieldTypeRepository {
	return &fieldtypeRepositoryImpl{db: db, ref: refTable{table: "field_types"}}
}

func (r *fieldtypeRepositoryImpl) Create(ctx context.Context, e fieldtype.FieldType) (fieldtype.FieldType, error) {
	row, err := r.ref.insert(ctx, GetQuerier(ctx, r.db), e.Name)
	if err != nil {
		return fieldtype.FieldType{}, err
	}
	return toFieldType(row), nil
}

func (r *fieldtypeRepositoryImpl) GetActiveByID(ctx context.Context, id int64) (fieldtype.FieldType, error) {
	row, err := r.ref.getActive(ctx, GetQuerier(ctx, r.db), id)
	if err != nil {
		return fieldtype.FieldType{}, err
	}
	return toFieldType(row), nil
}

func (r *fieldtypeRepositoryImpl) ListActive(ctx context.Context) ([]fieldtype.FieldType, error) {
	rows, err := r.ref.listActive(ctx, GetQuerier(ctx, r.db))
	if err != nil {
		return nil, err
	}
	result := make([]fieldtype.FieldType, 0, len(rows))
	for _, row := range rows {
		result = append(result, toFieldType(row))
	}
	return result, nil
}

func (r *fieldtypeRepositoryImpl) Update(ctx context.Context, e fieldtype.FieldType) error {
	return r.ref.updateName(ctx, GetQuerier(ctx, r.db), e.ID, e.Name)
}

func (r *fieldtypeRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	return r.ref.softDelete(ctx, GetQuerier(ctx, r.db), id)
}

func (r *fieldtypeRepositoryImpl) ExistsActiveByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	return r.ref.existsActiveName(ctx, GetQuerier(ctx, r.db), name, excludeID)
}

func (r *fieldtypeRepositoryImpl) ExistsActiveByID(ctx context.Context, id int64) (bool, error) {
	return r.ref.existsActiveID(ctx, GetQuerier(ctx, r.db), id)
}

func toFieldType(row refRow) fieldtype.FieldType {
	return fieldtype.FieldType{
		ID:        row.ID,
		Name:      row.Name,
		Deleted:   row.Deleted,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
