package phonecode

import "context"

type PhoneCountryCodeRepository interface {
	Create(ctx context.Context, c PhoneCountryCode) (PhoneCountryCode, error)
	GetActiveByID(ctx context.Context, id int64) (PhoneCountryCode, error)
	ListActive(ctx context.Context) ([]PhoneCountryCode, error)
	Update(ctx context.Context, c PhoneCountryCode) error
	SoftDelete(ctx context.Context, id int64) error
	ExistsActiveByCode(ctx context.Context, code string, excludeID int64) (bool, error)
	ExistsActiveByID(ctx context.Context, id int64) (bool, error)
}
