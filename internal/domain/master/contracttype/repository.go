package contracttype

import "context"

type ContractTypeRepository interface {
	Create(ctx context.Context, ct ContractType) (ContractType, error)
	GetActiveByID(ctx context.Context, id int64) (ContractType, error)
	ListActive(ctx context.Context) ([]ContractType, error)
	Update(ctx context.Context, ct ContractType) error
	SoftDelete(ctx context.Context, id int64) error
	ExistsActiveByName(ctx context.Context, name string, excludeID int64) (bool, error)
	ExistsActiveByID(ctx context.Context, id int64) (bool, error)
}
