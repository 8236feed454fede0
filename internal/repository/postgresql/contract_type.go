package postgresql

import (
	"context"

	"github.com/emiratehr/payroll-backend-go/internal/domain/master/contracttype"
	"github.com/emiratehr/payroll-backend-go/internal/pkg/database"
)

type contracttypeRepositoryImpl struct {
	db  *database.DB
	ref refTable
}

func NewContractTypeRepository(db *database.DB) contracttype.ContractTypeRepository {
	return &contracttypeRepositoryImpl{db: db, ref: refTable{table: "contract_types"}}
}

func (r *contracttypeRepositoryImpl) Create(ctx context.Context, e contracttype.ContractType) (contracttype.ContractType, error) {
	row, err := r.ref.insert(ctx, GetQuerier(ctx, r.db), e.Name)
	if err != nil {
		return contracttype.ContractType{}, err
	}
	return toContractType(row), nil
}

func (r *contracttypeRepositoryImpl) GetActiveByID(ctx context.Context, id int64) (contracttype.ContractType, error) {
	row, err := r.ref.getActive(ctx, GetQuerier(ctx, r.db), id)
	if err != nil {
		return contracttype.ContractType{}, err
	}
	return toContractType(row), nil
}

func (r *contracttypeRepositoryImpl) ListActive(ctx context.Context) ([]contracttype.ContractType, error) {
	rows, err := r.ref.listActive(ctx, GetQuerier(ctx, r.db))
	if err != nil {
		return nil, err
	}
	result := make([]contracttype.ContractType, 0, len(rows))
	for _, row := range rows {
		result = append(result, toContractType(row))
	}
	return result, nil
}

func (r *contracttypeRepositoryImpl) Update(ctx context.Context, e contracttype.ContractType) error {
	return r.ref.updateName(ctx, GetQuerier(ctx, r.db), e.ID, e.Name)
}

func (r *contracttypeRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	return r.ref.softDelete(ctx, GetQuerier(ctx, r.db), id)
}

func (r *contracttypeRepositoryImpl) ExistsActiveByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	return r.ref.existsActiveName(ctx, GetQuerier(ctx, r.db), name, excludeID)
}

func (r *contracttypeRepositoryImpl) ExistsActiveByID(ctx context.Context, id int64) (bool, error) {
	return r.ref.existsActiveID(ctx, GetQuerier(ctx, r.db), id)
}

func toContractType(row refRow) contracttype.ContractType {
	return contracttype.ContractType{
		ID:        row.ID,
		Name:      row.Name,
		Deleted:   row.Deleted,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
