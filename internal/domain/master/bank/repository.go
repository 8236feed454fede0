package bank

import "context"

type BankRepository interface {
	Create(ctx context.Context, b Bank) (Bank, error)
	GetActiveByID(ctx context.Context, id int64) (Bank, error)
	ListActive(ctx context.Context) ([]Bank, error)
	Update(ctx context.Context, b Bank) error
	SoftDelete(ctx context.Context, id int64) error
	ExistsActiveByName(ctx context.Context, name string, excludeID int64) (bool, error)
	ExistsActiveBySwiftCode(ctx context.Context, swiftCode string, excludeID int64) (bool, error)
	ExistsActiveByID(ctx context.Context, id int64) (bool, error)
}
