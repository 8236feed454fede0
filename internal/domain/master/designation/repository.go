package designation

import "context"

type DesignationRepository interface {
	Create(ctx context.Context, d Designation) (Designation, error)
	GetActiveByID(ctx context.Context, id int64) (Designation, error)
	ListActive(ctx context.Context) ([]Designation, error)
	Update(ctx context.Context, d Designation) error
	SoftDelete(ctx context.Context, id int64) error
	ExistsActiveByName(ctx context.Context, name string, excludeID int64) (bool, error)
}
