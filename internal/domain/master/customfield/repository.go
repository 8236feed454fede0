package customfield

import "context"

type CustomFieldConfigRepository interface {
	Create(ctx context.Context, c CustomFieldConfig) (CustomFieldConfig, error)
	GetActiveByID(ctx context.Context, id int64) (CustomFieldWithType, error)
	ListActive(ctx context.Context) ([]CustomFieldWithType, error)
	ListSelected(ctx context.Context) ([]CustomFieldWithType, error)
	Update(ctx context.Context, c CustomFieldConfig) error
	SoftDelete(ctx context.Context, id int64) error
	ExistsActiveByFieldKey(ctx context.Context, fieldKey string, excludeID int64) (bool, error)
}
