package jobtitle

import "context"

type JobTitleRepository interface {
	Create(ctx context.Context, e JobTitle) (JobTitle, error)
	GetActiveByID(ctx context.Context, id int64) (JobTitle, error)
	ListActive(ctx context.Context) ([]JobTitle, error)
	Update(ctx context.Context, e JobTitle) error
	SoftDelete(ctx context.Context, id int64) error
	ExistsActiveByName(ctx context.Context, name string, excludeID int64) (bool, error)
	ExistsActiveByID(ctx context.Context, id int64) (bool, error)
}
