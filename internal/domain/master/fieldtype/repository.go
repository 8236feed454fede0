package fieldtype

import "context"

type FieldTypeRepository interface {
	Create(ctx context.Context, e FieldType) (FieldType, error)
	GetActiveByID(ctx context.Context, id int64) (FieldType, error)
	ListActive(ctx context.Context) ([]FieldType, error)
	Update(ctx context.Context, e FieldType) error
	SoftDelete(ctx context.Context, id int64) error
	ExistsActiveByName(ctx context.Context, name string, excludeID int64) (bool, error)
	ExistsActiveByID(ctx context.Context, id int64) (bool, error)
}
