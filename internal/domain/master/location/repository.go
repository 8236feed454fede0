package location

import "context"

type LocationRepository interface {
	Create(ctx context.Context, e Location) (Location, error)
	GetActiveByID(ctx context.Context, id int64) (Location, error)
	ListActive(ctx context.Context) ([]Location, error)
	Update(ctx context.Context, e Location) error
	SoftDelete(ctx context.Context, id int64) error
	ExistsActiveByName(ctx context.Context, name string, excludeID int64) (bool, error)
	ExistsActiveByID(ctx context.Context, id int64) (bool, error)
}
