package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, e Department) (Department, error)
	GetActiveByID(ctx context.Context, id int64) (Department, error)
	ListActive(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, e Department) error
	SoftDelete(ctx context.Context, id int64) error
	ExistsActiveByName(ctx context.Context, name string, excludeID int64) (bool, error)
	ExistsActiveByID(ctx context.Context, id int64) (bool, error)
}
